package module

import (
	"sahabat3t-backend/internal/module/dashboard"
	"sahabat3t-backend/internal/module/ping"
	"sahabat3t-backend/internal/module/proposal"
	"sahabat3t-backend/internal/module/report"
	"sahabat3t-backend/internal/module/school"
	"sahabat3t-backend/internal/module/stats"
	"sahabat3t-backend/internal/module/timeline"
	"sahabat3t-backend/internal/module/upload"
	"sahabat3t-backend/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&proposal.ModuleProposal{},
		&report.ModuleReport{},
		&school.ModuleSchool{},
		&upload.ModuleUpload{},
		&timeline.ModuleTimeline{},
		&dashboard.ModuleDashboard{},
		&stats.ModuleStats{},
	})
}
