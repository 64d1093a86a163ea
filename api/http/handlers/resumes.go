package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/artem13815/resume-editor/api/http/presenter"
	"github.com/artem13815/resume-editor/pkg/resume"
)

type ResumesHandler struct {
	svc      resume.UseCase
	log      *slog.Logger
	maxBytes int64
}

func NewResumesHandler(svc resume.UseCase, log *slog.Logger, maxBytes int64) *ResumesHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	if log == nil {
		log = slog.Default()
	}
	return &ResumesHandler{svc: svc, log: log, maxBytes: maxBytes}
}

type SaveResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ListResponse struct {
	Resumes []resume.Summary `json:"resumes"`
	// Skipped counts storage files that could not be read.
	Skipped int `json:"skipped,omitempty"`
}

// Save сохраняет резюме в памяти и в файл <id>.json.
// @Summary     Сохранить резюме
// @Description Если id не передан, он генерируется как resume_YYYYMMDD_HHMMSS. Запись с существующим id перезаписывается.
// @Tags        Резюме
// @Accept      json
// @Produce     json
// @Param       resume body resume.Resume true "Резюме целиком"
// @Success     200 {object} SaveResponse
// @Failure     422 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /save-resume [post]
func (h *ResumesHandler) Save(c *fiber.Ctx) error {
	var in resume.Resume
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
	}
	id, err := h.svc.Save(c.Context(), in)
	if err != nil {
		var ve *resume.ValidationError
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusUnprocessableEntity, ve.Error())
		}
		h.log.ErrorContext(c.Context(), "save resume failed", "id", in.ID, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to save resume: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, SaveResponse{Message: "Resume saved successfully", ID: id})
}

// Get возвращает сохранённое резюме: сначала из памяти, затем из файла.
// @Summary Получить резюме
// @Tags    Резюме
// @Produce json
// @Param   id path string true "ID резюме"
// @Success 200 {object} resume.Resume
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	// params alias the request buffer; the id may outlive the request in the cache
	id := utils.CopyString(c.Params("id"))
	rec, err := h.svc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Resume not found")
		}
		h.log.ErrorContext(c.Context(), "load resume failed", "id", id, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to load resume: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// List возвращает резюме из памяти, затем из файлов, которых нет в памяти.
// @Summary Список резюме
// @Tags    Резюме
// @Produce json
// @Param   limit  query int false "Максимум строк (по умолчанию без ограничения)"
// @Param   offset query int false "Смещение"
// @Success 200 {object} ListResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	res, err := h.svc.List(c.Context())
	if err != nil {
		h.log.ErrorContext(c.Context(), "list resumes failed", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to list resumes: %v", err))
	}
	if len(res.Skipped) > 0 {
		h.log.WarnContext(c.Context(), "resume listing skipped files", "count", len(res.Skipped))
	}
	limit, offset := parseLimitOffset(c)
	return presenter.JSON(c, http.StatusOK, ListResponse{
		Resumes: page(res.Items, limit, offset),
		Skipped: len(res.Skipped),
	})
}

// Upload извлекает текст из PDF/DOCX и возвращает черновик резюме без сохранения.
// @Summary     Черновик резюме из файла
// @Description Принимает PDF или DOCX, извлекает текст и заполняет имя, контакты, краткое описание и навыки.
// @Tags        Резюме
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Файл резюме (PDF/DOCX)"
// @Success     200 {object} resume.Resume
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /upload-resume [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	if !resume.SupportedExt(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	draft, err := h.svc.Import(c.Context(), fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, draft)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
