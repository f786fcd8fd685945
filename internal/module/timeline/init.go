package timeline

import (
	"log/slog"

	"sahabat3t-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleTimeline struct{}

func (t *ModuleTimeline) GetName() string {
	return "Timeline"
}

func (t *ModuleTimeline) Init() {
	log = logger.New("Timeline")
}
