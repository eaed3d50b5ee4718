package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"medibook/internal/config"
	"medibook/internal/handler"
)

// Register wires routes and middleware. User, role, and appointment routes
// require a valid JWT; the rest of the API is public.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
	specializationHandler *handler.SpecializationHandler,
	hospitalHandler *handler.HospitalHandler,
	availabilityHandler *handler.AvailabilityHandler,
	slotHandler *handler.SlotHandler,
	appointmentHandler *handler.AppointmentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/hospitals", hospitalHandler.ListHospitals)
	api.GET("/hospitals/:id", hospitalHandler.GetHospital)
	api.POST("/hospitals", hospitalHandler.CreateHospital)
	api.PUT("/hospitals/:id", hospitalHandler.UpdateHospital)
	api.DELETE("/hospitals/:id", hospitalHandler.DeleteHospital)

	api.GET("/specializations", specializationHandler.ListSpecializations)
	api.GET("/specializations/:id", specializationHandler.GetSpecialization)
	api.POST("/specializations", specializationHandler.CreateSpecialization)
	api.PUT("/specializations/:id", specializationHandler.UpdateSpecialization)
	api.DELETE("/specializations/:id", specializationHandler.DeleteSpecialization)

	api.GET("/availability", availabilityHandler.ListAvailability)
	api.GET("/availability/:id", availabilityHandler.GetAvailability)
	api.POST("/availability", availabilityHandler.CreateAvailability)
	api.PUT("/availability/:id", availabilityHandler.UpdateAvailability)
	api.DELETE("/availability/:id", availabilityHandler.DeleteAvailability)

	api.GET("/slots", slotHandler.ListSlots)
	api.GET("/slots/:id", slotHandler.GetSlot)
	api.POST("/slots", slotHandler.CreateSlot)
	api.PUT("/slots/:id", slotHandler.UpdateSlot)
	api.DELETE("/slots/:id", slotHandler.DeleteSlot)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/doctors", userHandler.ListDoctors)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.POST("/users", userHandler.CreateUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)
	secured.GET("/users/:id/appointments", appointmentHandler.ListUserAppointments)

	secured.GET("/roles", roleHandler.ListRoles)
	secured.GET("/roles/:id", roleHandler.GetRole)
	secured.POST("/roles", roleHandler.CreateRole)
	secured.DELETE("/roles/:id", roleHandler.DeleteRole)

	secured.GET("/appointments", appointmentHandler.ListAppointments)
	secured.GET("/appointments/:id", appointmentHandler.GetAppointment)
	secured.POST("/appointments", appointmentHandler.CreateAppointment)
	secured.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	secured.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
