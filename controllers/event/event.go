package eventcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
	"github.com/colemarcuccilli/IBEwebsite/utils"
)

// eventView is an event plus the best-effort machine month the admin form
// edits through. date_month is empty whenever the stored label is not a
// parseable "Month Year".
type eventView struct {
	models.Event
	DateMonth string `json:"date_month"`
}

func toView(e models.Event) eventView {
	month, _ := utils.LabelToMonth(e.Date)
	return eventView{Event: e, DateMonth: month}
}

type createEventInput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	DateMonth   string `json:"date_month"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PDFURL      string `json:"pdf_url"`
}

// GetEvents lists all events for the admin dashboard, ordered by the date
// label.
// GET /admin/events
func GetEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.Event
		if err := db.Order("date").Find(&events).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}

		views := make([]eventView, 0, len(events))
		for _, e := range events {
			views = append(views, toView(e))
		}
		c.JSON(http.StatusOK, views)
	}
}

// CreateEvent adds a trade-show event. The date label may be supplied
// directly or derived from a YYYY-MM month value.
// POST /admin/events
func CreateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		date := input.Date
		if date == "" && input.DateMonth != "" {
			date = utils.MonthToLabel(input.DateMonth)
		}

		if input.Title == "" || date == "" || input.Location == "" || input.Description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		id := input.ID
		if id == "" {
			id = utils.Slugify(input.Title)
		}
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title does not produce a usable id"})
			return
		}

		var existing models.Event
		if err := db.First(&existing, "id = ?", id).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "An event with this id already exists"})
			return
		}

		event := models.Event{
			ID:          id,
			Title:       input.Title,
			Date:        date,
			Location:    input.Location,
			Description: input.Description,
			Link:        input.Link,
			PDFURL:      input.PDFURL,
		}

		if err := db.Create(&event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
			return
		}

		c.JSON(http.StatusCreated, toView(event))
	}
}

// EventUpdateInput enumerates the mutable event fields for partial updates.
type EventUpdateInput struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	DateMonth   *string `json:"date_month"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	PDFURL      *string `json:"pdf_url"`
}

// UpdateEvent applies the fields present in the request. A date_month value
// wins over a raw date label when both are sent.
// PUT /admin/events/:id
func UpdateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var event models.Event
		if err := db.First(&event, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		var input EventUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Title != nil {
			event.Title = *input.Title
		}
		if input.Date != nil {
			event.Date = *input.Date
		}
		if input.DateMonth != nil {
			if label := utils.MonthToLabel(*input.DateMonth); label != "" {
				event.Date = label
			}
		}
		if input.Location != nil {
			event.Location = *input.Location
		}
		if input.Description != nil {
			event.Description = *input.Description
		}
		if input.Link != nil {
			event.Link = *input.Link
		}
		if input.PDFURL != nil {
			event.PDFURL = *input.PDFURL
		}

		if err := db.Save(&event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
			return
		}

		c.JSON(http.StatusOK, toView(event))
	}
}

// DeleteEvent removes an event.
// DELETE /admin/events/:id
func DeleteEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Event{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
