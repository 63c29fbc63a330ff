package routes

import (
	"CareHub360/controllers"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public: the booking widget polls this before payment
	controllers.Slot(r)

	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Patient(r)
	controllers.Room(r)
	controllers.Appointment(r)
	controllers.Admission(r)
	controllers.Billing(r)
}
