package bucket

import (
	"fmt"

	"storage-gateway/core/apperr"
	"storage-gateway/core/audit"
	"storage-gateway/core/logger"
	"storage-gateway/core/response"
	"storage-gateway/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateBucketRequest is the body of a bucket creation.
type CreateBucketRequest struct {
	Name string `json:"name" example:"my-bucket"`
}

// BucketList lists bucket names.
type BucketList struct {
	Buckets []string `json:"buckets"`
}

// BucketStatus describes a single bucket.
type BucketStatus struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

// Handler handles HTTP requests for buckets.
type Handler struct {
	service  *Service
	recorder audit.Recorder
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, recorder audit.Recorder, logger *zap.Logger) *Handler {
	return &Handler{service: service, recorder: recorder, logger: logger}
}

// RegisterRoutes registers the bucket routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Get("/", h.HandleListBuckets)
	group.Post("/", h.HandleCreateBucket)
	group.Get("/:bucketName/exists", h.HandleBucketExists)
	group.Delete("/:bucketName", h.HandleDeleteBucket)
}

// HandleListBuckets lists all buckets.
// @Summary List Buckets
// @Description Lists the names of all buckets in backend order.
// @Tags buckets
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope[BucketList]
// @Failure 500 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets [get]
func (h *Handler) HandleListBuckets(c *fiber.Ctx) error {
	names, err := h.service.ListBuckets(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(response.Ok(BucketList{Buckets: names}, "ok"))
}

// HandleCreateBucket creates a bucket.
// @Summary Create Bucket
// @Description Creates a bucket. Creating an existing bucket succeeds without side effects.
// @Tags buckets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateBucketRequest true "Bucket to create"
// @Success 200 {object} response.Envelope[BucketStatus]
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Failure 500 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets [post]
func (h *Handler) HandleCreateBucket(c *fiber.Ctx) error {
	var req CreateBucketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid request body", err)
	}

	if _, err := h.service.CreateBucket(c.UserContext(), req.Name); err != nil {
		return err
	}

	logger.WithRayID(h.logger, c).Info("Bucket create requested", zap.String("bucket", req.Name))
	h.recorder.Record(c.UserContext(), audit.Event{
		RayID:  logger.RayID(c),
		Action: audit.ActionBucketCreate,
		Bucket: req.Name,
	})

	msg := fmt.Sprintf("Bucket '%s' created successfully", req.Name)
	return c.JSON(response.Ok(BucketStatus{Name: req.Name, Exists: true}, msg))
}

// HandleBucketExists checks whether a bucket exists.
// @Summary Check Bucket
// @Description Reports whether a bucket exists.
// @Tags buckets
// @Produce json
// @Security ApiKeyAuth
// @Param bucketName path string true "Bucket name"
// @Success 200 {object} response.Envelope[BucketStatus]
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets/{bucketName}/exists [get]
func (h *Handler) HandleBucketExists(c *fiber.Ctx) error {
	name, err := utils.PathParam(c, "bucketName")
	if err != nil {
		return err
	}

	exists, err := h.service.BucketExists(c.UserContext(), name)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Bucket '%s' does not exist", name)
	if exists {
		msg = fmt.Sprintf("Bucket '%s' exists", name)
	}
	return c.JSON(response.Ok(BucketStatus{Name: name, Exists: exists}, msg))
}

// HandleDeleteBucket deletes a bucket and everything in it.
// @Summary Delete Bucket
// @Description Removes every object of the bucket, then the bucket itself.
// @Tags buckets
// @Security ApiKeyAuth
// @Param bucketName path string true "Bucket name"
// @Success 204
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Failure 404 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets/{bucketName} [delete]
func (h *Handler) HandleDeleteBucket(c *fiber.Ctx) error {
	name, err := utils.PathParam(c, "bucketName")
	if err != nil {
		return err
	}

	if _, err := h.service.DeleteBucket(c.UserContext(), name); err != nil {
		return err
	}

	h.recorder.Record(c.UserContext(), audit.Event{
		RayID:  logger.RayID(c),
		Action: audit.ActionBucketDelete,
		Bucket: name,
	})
	return c.SendStatus(fiber.StatusNoContent)
}
