package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/programs/controller"
)

func ProgramsAdminRoutes(api fiber.Router, db *gorm.DB) {
	programCtrl := controller.NewProgramController(db)

	program := api.Group("/programs")
	program.Get("/", programCtrl.GetAllPrograms)
	program.Post("/", programCtrl.CreateProgram)
	program.Put("/:id", programCtrl.UpdateProgram)
	program.Delete("/:id", programCtrl.DeleteProgram)

	scheduleCtrl := controller.NewScheduleController(db)

	schedule := api.Group("/schedules")
	schedule.Get("/", scheduleCtrl.GetAllSchedules)
	schedule.Post("/", scheduleCtrl.CreateSchedule)
	schedule.Put("/:id", scheduleCtrl.UpdateSchedule)
	schedule.Delete("/:id", scheduleCtrl.DeleteSchedule)

	weeklyCtrl := controller.NewWeeklyScheduleController(db)

	weekly := api.Group("/weekly-schedules")
	weekly.Get("/", weeklyCtrl.GetAllWeeklySchedules)
	weekly.Post("/", weeklyCtrl.CreateWeeklySchedule)
	weekly.Put("/:id", weeklyCtrl.UpdateWeeklySchedule)
	weekly.Delete("/:id", weeklyCtrl.DeleteWeeklySchedule)

	activityCtrl := controller.NewActivityController(db)

	// :type = weekly | monthly | yearly
	activity := api.Group("/activities/:type")
	activity.Get("/", activityCtrl.GetAllActivities)
	activity.Post("/", activityCtrl.CreateActivity)
	activity.Put("/:id", activityCtrl.UpdateActivity)
	activity.Delete("/:id", activityCtrl.DeleteActivity)
}
