package api

import (
	"errors"
	"io"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumia/statement-engine/internal/engine"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler holds the HTTP handlers for the API.
type Handler struct {
	aggregator *engine.Aggregator
	logger     *zap.Logger
}

// NewHandler builds the API handler set.
func NewHandler(aggregator *engine.Aggregator, logger *zap.Logger) *Handler {
	return &Handler{aggregator: aggregator, logger: logger}
}

// HandleHealth reports service liveness and version.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
	})
}

// HandleProcess accepts one or more uploaded statement PDFs and responds
// with the consolidated summary, expenses, and installment projection.
// Non-PDF entries in the batch are dropped rather than erroring the whole
// request; a batch with no usable files is a client error.
func (h *Handler) HandleProcess(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files uploaded. Send PDF statements as multipart form files.",
		})
	}

	batchID := uuid.NewString()

	// Form field names are a map; iterate them sorted so identical
	// requests always process files in the same order.
	fieldNames := make([]string, 0, len(form.File))
	for name := range form.File {
		fieldNames = append(fieldNames, name)
	}
	sort.Strings(fieldNames)

	var files []engine.File
	for _, name := range fieldNames {
		for _, fh := range form.File[name] {
			src, err := fh.Open()
			if err != nil {
				h.logger.Warn("cannot open uploaded file",
					zap.String("batch", batchID),
					zap.String("file", fh.Filename),
					zap.Error(err))
				continue
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				h.logger.Warn("cannot read uploaded file",
					zap.String("batch", batchID),
					zap.String("file", fh.Filename),
					zap.Error(err))
				continue
			}
			files = append(files, engine.File{Name: fh.Filename, Data: data})
		}
	}

	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files uploaded. Send PDF statements as multipart form files.",
		})
	}

	h.logger.Info("processing batch",
		zap.String("batch", batchID),
		zap.Int("files", len(files)))

	result, err := h.aggregator.ProcessAll(files)
	if err != nil {
		if errors.Is(err, engine.ErrNoValidFiles) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No valid PDF files in the upload. Only .pdf files are supported.",
			})
		}
		h.logger.Error("batch processing failed",
			zap.String("batch", batchID),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Statement processing failed.",
		})
	}

	return c.JSON(result)
}
