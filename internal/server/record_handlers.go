package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard handles GET /dashboard/:id
// @Summary User dashboard
// @Description All journals, books and stories of the signed-in user. Only the user's own id is accepted.
// @Tags records
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{user=object{id=int,username=string},journals=[]models.Record,books=[]models.Record,stories=[]models.Record}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /dashboard/{id} [get]
func (s *Server) Dashboard(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	claim, err := sessionClaim(c)
	if err != nil {
		return respondError(c, err)
	}
	if id != claim.UserID {
		return respondError(c, models.NewNotFoundError("User", id))
	}

	dash, err := s.recordService.Dashboard(c.UserContext(), claim.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":     viewOf(claim),
		"journals": dash.Journals,
		"books":    dash.Books,
		"stories":  dash.Stories,
	})
}

// ListRecords handles GET /journal, /book and /story
// @Summary List records
// @Description Records of one kind owned by the signed-in user, oldest first
// @Tags records
// @Produce json
// @Success 200 {object} object{kind=string,records=[]models.Record}
// @Router /journal [get]
// @Router /book [get]
// @Router /story [get]
func (s *Server) ListRecords(kind models.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, err := sessionClaim(c)
		if err != nil {
			return respondError(c, err)
		}

		records, err := s.recordService.List(c.UserContext(), kind, claim.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"kind":    kind,
			"records": records,
		})
	}
}

// CreateRecordPage handles GET /create{kind}
// @Summary Record creation form
// @Tags records
// @Produce json
// @Success 200 {object} object{kind=string,errors=[]string}
// @Router /createjournal [get]
// @Router /createbook [get]
// @Router /createstory [get]
func (s *Server) CreateRecordPage(kind models.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"kind":   kind,
			"errors": []string{},
		})
	}
}

// CreateRecord handles POST /create{kind}
// @Summary Create record
// @Description Accepts {kind}title/{kind}content form fields or plain title/content
// @Tags records
// @Accept x-www-form-urlencoded,json
// @Param title formData string true "Title (at most 300 characters)"
// @Param content formData string false "Content"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Router /createjournal [post]
// @Router /createbook [post]
// @Router /createstory [post]
func (s *Server) CreateRecord(kind models.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, err := sessionClaim(c)
		if err != nil {
			return respondError(c, err)
		}

		var form models.RecordForm
		if err := c.BodyParser(&form); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		title, content := form.Resolve(kind)

		if _, err := s.recordService.Create(c.UserContext(), kind, claim.UserID, title, content); err != nil {
			return respondError(c, err)
		}
		return c.Redirect(kind.ListPath(), fiber.StatusFound)
	}
}

// EditRecordPage handles GET /edit{kind}/:id
// @Summary Record edit form
// @Tags records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} object{kind=string,record=models.Record}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /editjournal/{id} [get]
// @Router /editbook/{id} [get]
// @Router /editstory/{id} [get]
func (s *Server) EditRecordPage(kind models.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		claim, err := sessionClaim(c)
		if err != nil {
			return respondError(c, err)
		}

		rec, err := s.recordService.Get(c.UserContext(), kind, id, claim.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"kind":   kind,
			"record": rec,
		})
	}
}

// EditRecord handles POST /edit{kind}/:id
// @Summary Update record
// @Tags records
// @Accept x-www-form-urlencoded,json
// @Param id path int true "Record ID"
// @Param title formData string true "Title (at most 300 characters)"
// @Param content formData string false "Content"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /editjournal/{id} [post]
// @Router /editbook/{id} [post]
// @Router /editstory/{id} [post]
func (s *Server) EditRecord(kind models.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		claim, err := sessionClaim(c)
		if err != nil {
			return respondError(c, err)
		}

		var form models.RecordForm
		if err := c.BodyParser(&form); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		title, content := form.Resolve(kind)

		if err := s.recordService.Update(c.UserContext(), kind, id, claim.UserID, title, content); err != nil {
			return respondError(c, err)
		}
		return c.Redirect(kind.ListPath(), fiber.StatusFound)
	}
}

// DeleteRecord handles POST /delete{kind}/:id
// @Summary Delete record
// @Description Deleting a missing or foreign record is a no-op
// @Tags records
// @Param id path int true "Record ID"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Router /deletejournal/{id} [post]
// @Router /deletebook/{id} [post]
// @Router /deletestory/{id} [post]
func (s *Server) DeleteRecord(kind models.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		claim, err := sessionClaim(c)
		if err != nil {
			return respondError(c, err)
		}

		if err := s.recordService.Delete(c.UserContext(), kind, id, claim.UserID); err != nil {
			return respondError(c, err)
		}
		return c.Redirect(kind.ListPath(), fiber.StatusFound)
	}
}

// ToggleCheck handles POST /togglecheck/:id
// @Summary Mark a book as read
// @Description A present, truthy "checked" field marks the book read; anything else marks it unread
// @Tags records
// @Accept x-www-form-urlencoded,json
// @Param id path int true "Book ID"
// @Param checked formData string false "Checkbox value"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /togglecheck/{id} [post]
func (s *Server) ToggleCheck(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	claim, err := sessionClaim(c)
	if err != nil {
		return respondError(c, err)
	}

	var form models.ToggleForm
	// An unticked checkbox may arrive as an empty body.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&form); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	if err := s.recordService.SetChecked(c.UserContext(), id, claim.UserID, form.IsChecked()); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(models.KindBook.ListPath(), fiber.StatusFound)
}
