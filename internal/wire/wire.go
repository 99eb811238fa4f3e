package wire

import (
	"TrainerHub/internal/api"
	"TrainerHub/internal/api/config"
	"TrainerHub/internal/api/handler"
	"TrainerHub/internal/job"
	"TrainerHub/internal/pkg/cron"
	"TrainerHub/internal/repository"
	"TrainerHub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	coachRepo := repository.NewCoachRepository(db)
	clientRepo := repository.NewClientRepository(db)
	metricRepo := repository.NewMetricRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)

	coachService := service.NewCoachService(coachRepo)
	clientService := service.NewClientService(clientRepo, metricRepo)
	metricService := service.NewMetricService(metricRepo, clientRepo)
	exerciseService := service.NewExerciseService(exerciseRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(coachService),
		ClientHandler:   handler.NewClientHandler(clientService),
		MetricHandler:   handler.NewMetricHandler(metricService),
		ExerciseHandler: handler.NewExerciseHandler(exerciseService),
		MediaHandler:    handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob())

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
