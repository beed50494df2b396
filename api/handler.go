package api

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	"os-project/config"
	"os-project/internal/core"
	"os-project/internal/requests"
	"os-project/internal/responses"
	"os-project/internal/schedulers"
	"os-project/internal/store"
)

const (
	AlgorithmPriority      = "priority"
	AlgorithmPriorityAging = "priority-aging"
)

type SchedulerHandler interface {
	Priority(ctx *fiber.Ctx) error
	PriorityAging(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.RunStore
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, store store.RunStore) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, store: store}
}

// RegisterRoutes mounts the handler under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/priority", handler.PriorityAging)
		v1.Post("/priority/no-aging", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/runs/:id", handler.GetRun)
	}
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := s.run(ctx.UserContext(), AlgorithmPriority, request)
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) PriorityAging(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := s.run(ctx.UserContext(), AlgorithmPriorityAging, request)
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	algorithms := []string{AlgorithmPriority, AlgorithmPriorityAging}
	results := make([]responses.ScheduleResponse, len(algorithms))
	errs := make([]error, len(algorithms))

	userCtx := ctx.UserContext()
	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm string) {
			defer wg.Done()
			results[i], errs[i] = s.run(userCtx, algorithm, request)
		}(i, algorithm)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	response, err := s.store.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(ctx context.Context, algorithm string, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var (
		result    core.Result
		threshold int
		err       error
	)
	switch algorithm {
	case AlgorithmPriorityAging:
		threshold = core.NormalizeThreshold(request.Threshold(s.config.AgingThreshold))
		result, err = schedulers.SchedulePriorityAging(request.Processes(), threshold)
	default:
		result, err = schedulers.SchedulePriority(request.Processes())
	}
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response := responses.NewScheduleResponse(algorithm, threshold, result)
	id, err := s.store.Save(ctx, response)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response.RunID = id
	return response, nil
}

func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return requests.ScheduleRequests{}, err
	}
	return request, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	log.Println("invalid request format:", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func failure(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, schedulers.ErrNoProcesses),
		errors.Is(err, schedulers.ErrDuplicateProcess),
		errors.Is(err, schedulers.ErrNegativeArrival),
		errors.Is(err, schedulers.ErrNonPositiveBurst),
		errors.Is(err, schedulers.ErrTimeOverflow):
		status = fiber.StatusBadRequest
	case errors.Is(err, store.ErrRunNotFound):
		status = fiber.StatusNotFound
	default:
		log.Println("can not process request:", err)
		return ctx.Status(status).JSON(fiber.Map{"error": "can not process request"})
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
