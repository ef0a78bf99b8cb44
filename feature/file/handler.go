package file

import (
	"errors"
	"fmt"
	"net/http"

	"storage-gateway/core/apperr"
	"storage-gateway/core/audit"
	"storage-gateway/core/logger"
	"storage-gateway/core/middleware/reqctx"
	"storage-gateway/core/response"
	"storage-gateway/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrNoFile is returned when an upload carries no file content.
var ErrNoFile = errors.New("no file uploaded")

// Handler handles HTTP requests for files.
type Handler struct {
	service  *Service
	issuer   *Issuer
	recorder audit.Recorder
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, issuer *Issuer, recorder audit.Recorder, logger *zap.Logger) *Handler {
	return &Handler{service: service, issuer: issuer, recorder: recorder, logger: logger}
}

// RegisterRoutes registers the file routes. The presign route precedes the
// key wildcard so it is never read as an object key.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets/:bucketName/files")
	group.Get("/", h.HandleListFiles)
	group.Get("/presigned-upload-url", h.HandlePresignedUploadURL)
	group.Post("/", h.HandleUploadFile)
	group.Get("/*", h.HandleDownloadFile)
	group.Delete("/*", h.HandleDeleteFile)
}

// HandleListFiles lists the keys of a bucket.
// @Summary List Files
// @Description Lists every object key of a bucket, recursively.
// @Tags files
// @Produce json
// @Security ApiKeyAuth
// @Param bucketName path string true "Bucket name"
// @Success 200 {object} response.Envelope[FileList]
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Failure 404 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets/{bucketName}/files [get]
func (h *Handler) HandleListFiles(c *fiber.Ctx) error {
	bucketName, err := utils.PathParam(c, "bucketName")
	if err != nil {
		return err
	}

	keys, exists, err := h.service.listFiles(c.UserContext(), bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("bucket '%s' does not exist", bucketName)
	}
	return c.JSON(response.Ok(FileList{Files: keys}, "ok"))
}

// HandlePresignedUploadURL issues a presigned PUT URL.
// @Summary Presigned Upload URL
// @Description Issues a time-limited URL accepting one PUT of the key. The Content-Type header of the upload must match contentType.
// @Tags files
// @Produce json
// @Security ApiKeyAuth
// @Param bucketName path string true "Bucket name"
// @Param key query string true "Object key"
// @Param contentType query string false "Content type bound into the signature" default(application/octet-stream)
// @Param durationMinutes query number false "Validity in minutes" default(10)
// @Success 200 {object} response.Envelope[PresignedURL]
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets/{bucketName}/files/presigned-upload-url [get]
func (h *Handler) HandlePresignedUploadURL(c *fiber.Ctx) error {
	bucketName, err := utils.PathParam(c, "bucketName")
	if err != nil {
		return err
	}
	minutes, err := utils.QueryFloat(c, "durationMinutes", 0)
	if err != nil {
		return err
	}

	req := PresignedURLRequest{
		Key:             c.Query("key"),
		ContentType:     c.Query("contentType"),
		BucketName:      bucketName,
		DurationMinutes: minutes,
	}
	u, err := h.issuer.Issue(c.UserContext(), req)
	if err != nil {
		return err
	}

	h.recorder.Record(c.UserContext(), audit.Event{
		RayID:  logger.RayID(c),
		Action: audit.ActionFilePresign,
		Bucket: bucketName,
		Key:    req.Key,
	})
	return c.JSON(response.Ok(PresignedURL{URL: u}, "ok"))
}

// HandleUploadFile uploads a multipart file.
// @Summary Upload File
// @Description Uploads the multipart field "file". The key defaults to the file name. The bucket is created when missing.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param bucketName path string true "Bucket name"
// @Param file formData file true "File to upload"
// @Param key formData string false "Object key"
// @Success 200 {object} response.Envelope[UploadResult]
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Failure 500 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets/{bucketName}/files [post]
func (h *Handler) HandleUploadFile(c *fiber.Ctx) error {
	bucketName, err := utils.PathParam(c, "bucketName")
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil || fh.Size == 0 {
		return apperr.Wrap(apperr.KindValidation, "invalid upload", ErrNoFile)
	}

	key := c.FormValue("key")
	if key == "" {
		key = fh.Filename
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	result, err := h.service.UploadFile(c.UserContext(), bucketName, key, f, fh.Size, fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return err
	}

	logger.WithRayID(h.logger, c).Debug("Upload completed", zap.String("bucket", bucketName), zap.String("key", key))
	h.recorder.Record(c.UserContext(), audit.Event{
		RayID:  logger.RayID(c),
		Action: audit.ActionFileUpload,
		Bucket: bucketName,
		Key:    key,
	})
	return c.JSON(response.Ok(result, "File uploaded successfully"))
}

// HandleDownloadFile streams an object.
// @Summary Download File
// @Description Streams the object as an attachment.
// @Tags files
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param bucketName path string true "Bucket name"
// @Param key path string true "Object key, may contain slashes"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets/{bucketName}/files/{key} [get]
func (h *Handler) HandleDownloadFile(c *fiber.Ctx) error {
	bucketName, err := utils.PathParam(c, "bucketName")
	if err != nil {
		return err
	}
	key, err := utils.WildcardParam(c)
	if err != nil {
		return err
	}

	dl, err := h.service.GetFile(c.UserContext(), bucketName, key)
	if err != nil {
		return err
	}

	contentType := dl.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, utils.Attachment(key))
	if dl.ETag != "" {
		c.Set(fiber.HeaderETag, `"`+dl.ETag+`"`)
	}
	if !dl.LastModified.IsZero() {
		c.Set(fiber.HeaderLastModified, dl.LastModified.UTC().Format(http.TimeFormat))
	}

	// fasthttp closes the body once it has been written.
	return reqctx.SendStream(c, dl.Body, int(dl.Size))
}

// HandleDeleteFile deletes an object.
// @Summary Delete File
// @Description Deletes the object. Deleting a missing key succeeds.
// @Tags files
// @Security ApiKeyAuth
// @Param bucketName path string true "Bucket name"
// @Param key path string true "Object key, may contain slashes"
// @Success 204
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Router /api/buckets/{bucketName}/files/{key} [delete]
func (h *Handler) HandleDeleteFile(c *fiber.Ctx) error {
	bucketName, err := utils.PathParam(c, "bucketName")
	if err != nil {
		return err
	}
	key, err := utils.WildcardParam(c)
	if err != nil {
		return err
	}

	if _, err := h.service.DeleteFile(c.UserContext(), bucketName, key); err != nil {
		return err
	}

	h.recorder.Record(c.UserContext(), audit.Event{
		RayID:  logger.RayID(c),
		Action: audit.ActionFileDelete,
		Bucket: bucketName,
		Key:    key,
	})
	return c.SendStatus(fiber.StatusNoContent)
}
