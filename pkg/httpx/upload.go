package httpx

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// FormFile is one file read from a multipart request
type FormFile struct {
	Name string
	Data []byte
}

// Files reads every file sent under field. A request without files is
// reported as MISSING_FILE.
func Files(c *fiber.Ctx, field string) ([]FormFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, ErrInvalidBody(err).WithDetail("field", field)
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return nil, ErrRegistry.New(CodeMissingFile).WithDetail("field", field)
	}

	out := make([]FormFile, 0, len(headers))
	for _, h := range headers {
		data, err := readPart(h)
		if err != nil {
			return nil, ErrInvalidBody(err).WithDetail("file", h.Filename)
		}
		out = append(out, FormFile{Name: h.Filename, Data: data})
	}
	return out, nil
}

// File reads the single file sent under field
func File(c *fiber.Ctx, field string) (FormFile, error) {
	h, err := c.FormFile(field)
	if err != nil {
		return FormFile{}, ErrRegistry.New(CodeMissingFile).WithDetail("field", field)
	}
	data, err := readPart(h)
	if err != nil {
		return FormFile{}, ErrInvalidBody(err).WithDetail("file", h.Filename)
	}
	return FormFile{Name: h.Filename, Data: data}, nil
}

func readPart(h *multipart.FileHeader) ([]byte, error) {
	f, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
