package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/breatheaware/aqi-service/internal/aqi"
	"github.com/breatheaware/aqi-service/internal/model"
	"github.com/breatheaware/aqi-service/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *aqi.Service) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "BreatheAware API is running! 🌍",
			"endpoints": fiber.Map{
				"/api/v1/aqi/live":    "GET - Live AQI assessment for the configured city",
				"/api/v1/aqi/latest":  "GET - Most recent cached assessment",
				"/api/v1/aqi/predict": "POST - Predict AQI from pollutant values",
			},
		})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/aqi/live", func(c *fiber.Ctx) error {
		assessment, err := service.Assess(c.Context())
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(assessment)
	})

	v1.Get("/aqi/latest", func(c *fiber.Ctx) error {
		assessment, err := service.Latest()
		if err != nil {
			if errors.Is(err, store.ErrEmpty) {
				return fiber.NewError(fiber.StatusNotFound, "no assessment available yet")
			}
			return toHTTPError(err)
		}
		return c.JSON(assessment)
	})

	v1.Post("/aqi/predict", func(c *fiber.Ctx) error {
		var req predictRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		assessment, err := service.AssessReading(req.toReading())
		if err != nil {
			if errors.Is(err, aqi.ErrInvalidReading) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return toHTTPError(err)
		}
		return c.JSON(assessment)
	})
}

// predictRequest holds caller-supplied pollutant values. Pointers are used
// so that a legitimate zero concentration still passes `required`.
type predictRequest struct {
	PM25 *float64 `json:"pm25" validate:"required,gte=0"`
	PM10 *float64 `json:"pm10" validate:"required,gte=0"`
	NO2  *float64 `json:"no2" validate:"required,gte=0"`
	SO2  *float64 `json:"so2" validate:"required,gte=0"`
	CO   *float64 `json:"co" validate:"required,gte=0"`
	O3   *float64 `json:"o3" validate:"required,gte=0"`
}

func (r predictRequest) toReading() aqi.PollutantReading {
	return aqi.PollutantReading{
		PM25: *r.PM25,
		PM10: *r.PM10,
		NO2:  *r.NO2,
		SO2:  *r.SO2,
		CO:   *r.CO,
		O3:   *r.O3,
	}
}

// toHTTPError maps pipeline errors onto HTTP status codes.
func toHTTPError(err error) *fiber.Error {
	switch {
	case errors.Is(err, aqi.ErrProviderUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "failed to fetch live pollution data")
	case errors.Is(err, aqi.ErrInvalidReading):
		return fiber.NewError(fiber.StatusBadGateway, "provider returned a malformed reading")
	case errors.Is(err, model.ErrModelUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "classification model not loaded")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
