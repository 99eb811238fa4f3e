package consts

const (
	MimePrefixImage = "image"
	MimeGif         = "image/gif"
)

const (
	ClientStatusConnected = "Connected"
	ClientTypeOnline      = "Online"
)

const (
	ExerciseStatusActive = "active"
)
