package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/programs/controller"
)

func ProgramsUserRoutes(api fiber.Router, db *gorm.DB) {
	programCtrl := controller.NewProgramController(db)
	api.Get("/programs", programCtrl.GetPublicPrograms)

	scheduleCtrl := controller.NewScheduleController(db)
	api.Get("/schedules", scheduleCtrl.GetPublicSchedules)

	weeklyCtrl := controller.NewWeeklyScheduleController(db)
	api.Get("/weekly-schedules", weeklyCtrl.GetPublicWeeklySchedules)

	activityCtrl := controller.NewActivityController(db)
	api.Get("/activities/:type", activityCtrl.GetPublicActivities)
}
