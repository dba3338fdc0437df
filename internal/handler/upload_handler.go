package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"orderbridge/internal/config"
	"orderbridge/internal/excel"
	"orderbridge/internal/middleware"
	"orderbridge/internal/models"
	"orderbridge/internal/repository"
	"orderbridge/internal/service"
	"orderbridge/internal/utils"
	"orderbridge/internal/worker"
)

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

var errInvalidFileType = errors.New("unsupported file type")

type UploadHandler struct {
	cfg     *config.Config
	imports *service.ImportService
	uploads *repository.FileUploadRepository
	queue   *asynq.Client
}

func NewUploadHandler(cfg *config.Config, imports *service.ImportService, uploads *repository.FileUploadRepository, queue *asynq.Client) *UploadHandler {
	return &UploadHandler{cfg: cfg, imports: imports, uploads: uploads, queue: queue}
}

// Detect checks a file's headers against the known platforms without
// importing anything. The uploaded copy never outlives the request.
func (h *UploadHandler) Detect(c *fiber.Ctx) error {
	path, _, err := h.saveUpload(c)
	if errors.Is(err, errInvalidFileType) {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, models.MsgInvalidFileType, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "could not read uploaded file", err)
	}
	defer os.Remove(path)

	result, err := h.imports.DetectFile(path)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, detectionMessage(err), err)
	}
	return utils.SuccessResponse(c, "detection finished", result)
}

// Upload accepts a workbook, attributes it to a platform, and queues it
// for background processing.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	path, header, err := h.saveUpload(c)
	if errors.Is(err, errInvalidFileType) {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, models.MsgInvalidFileType, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "could not read uploaded file", err)
	}

	detection, err := h.imports.DetectFile(path)
	if err != nil {
		os.Remove(path)
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, detectionMessage(err), err)
	}
	if !detection.IsValid {
		// DetectFile already removed the rejected artifact.
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "file does not match any known platform", nil)
	}

	userID := middleware.CurrentUserID(c)
	platform := string(detection.DetectedPlatform)
	upload := &models.FileUpload{
		Code:             uuid.NewString(),
		UserID:           userID,
		OriginalFilename: header,
		StoredPath:       path,
		FileSize:         fileSize(path),
		Platform:         &platform,
		MatchPercentage:  &detection.MatchPercentage,
		Status:           models.UploadStatusPending,
	}
	if err := h.uploads.Create(c.Context(), upload); err != nil {
		os.Remove(path)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not record upload", err)
	}

	task, err := worker.NewProcessUploadTask(worker.ProcessUploadPayload{
		Code:   upload.Code,
		Path:   path,
		UserID: userID,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not build task", err)
	}
	if _, err := h.queue.EnqueueContext(c.Context(), task); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not queue upload", err)
	}

	return utils.SuccessResponse(c, "upload queued", fiber.Map{
		"code":      upload.Code,
		"detection": detection,
	})
}

// Status reports the processing state and result of one upload.
func (h *UploadHandler) Status(c *fiber.Ctx) error {
	upload, err := h.uploads.FindByCode(c.Context(), c.Params("code"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "lookup failed", err)
	}
	if upload == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "upload not found", nil)
	}
	return utils.SuccessResponse(c, "ok", upload)
}

// List returns the caller's uploads, newest first.
func (h *UploadHandler) List(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	uploads, total, err := h.uploads.List(c.Context(), middleware.CurrentUserID(c), params.Limit, utils.GetOffset(params.Page, params.Limit))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "list failed", err)
	}
	return utils.SuccessResponse(c, "ok", fiber.Map{
		"uploads":    uploads,
		"pagination": utils.CalculatePagination(params.Page, params.Limit, total),
	})
}

func (h *UploadHandler) saveUpload(c *fiber.Ctx) (path, originalName string, err error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", "", fmt.Errorf("missing file field: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", "", fmt.Errorf("%w %s", errInvalidFileType, ext)
	}
	if file.Size > int64(h.cfg.Upload.MaxSizeMB)*1024*1024 {
		return "", "", fmt.Errorf("file exceeds %d MB", h.cfg.Upload.MaxSizeMB)
	}

	if err := os.MkdirAll(h.cfg.Upload.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}
	dest := filepath.Join(h.cfg.Upload.Dir, uuid.NewString()+ext)
	if err := c.SaveFile(file, dest); err != nil {
		return "", "", fmt.Errorf("save upload: %w", err)
	}
	return dest, file.Filename, nil
}

func detectionMessage(err error) string {
	switch {
	case errors.Is(err, excel.ErrFileNotFound):
		return models.MsgFileNotFound
	case errors.Is(err, excel.ErrEmptySheet):
		return models.MsgEmptySheet
	default:
		return "could not inspect file"
	}
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
