package app

import (
	"gorm.io/gorm"

	"github.com/growthpilot/backend/internal/data/repos/topicstore"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

type Repos struct {
	TopicRecord topicstore.TopicRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		TopicRecord: topicstore.NewTopicRecordRepo(db, log),
	}
}
