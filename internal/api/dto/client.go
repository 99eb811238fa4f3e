package dto

// CreateClientDTO 新建客户
type CreateClientDTO struct {
	FirstName  string  `json:"first_name" binding:"required" validate:"required,max=50"`
	LastName   string  `json:"last_name" validate:"max=50"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	ClientType string  `json:"client_type" validate:"omitempty,max=30"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	// 新建时的指标初始顺序，下标即 display_order
	OrderedMetricIds []uint64 `json:"ordered_metric_ids,omitempty"`
}

// UpdateClientDTO 更新客户，均为可选字段
type UpdateClientDTO struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	ClientType *string `json:"client_type,omitempty" validate:"omitempty,max=30"`
	Status     *string `json:"status,omitempty" validate:"omitempty,max=30"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

// ClientRowDTO 客户列表行，直接对应仪表盘表格
type ClientRowDTO struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Demo            bool    `json:"demo"`
	LastActivity    string  `json:"lastActivity"`
	LastTraining7d  *int    `json:"lastTraining7d"`
	LastTraining30d *int    `json:"lastTraining30d"`
	LastTasks7d     *int    `json:"lastTasks7d"`
	Category        string  `json:"category"`
	Status          string  `json:"status"`
	Avatar          *string `json:"avatar"`
}
