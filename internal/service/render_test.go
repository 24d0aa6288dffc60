package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lostfound-backend/models"
)

func TestRenderNotification(t *testing.T) {
	item := &models.FoundItem{
		Title:       "iPhone 13",
		Category:    "Electronics",
		Description: "Black case, cracked screen",
		Location:    "Central Station",
		ReporterID:  "u1",
	}

	content := RenderNotification(item)

	assert.Contains(t, content.Subject, "Electronics")
	assert.Contains(t, content.HTML, "iPhone 13")
	assert.Contains(t, content.HTML, "Black case, cracked screen")
	assert.Contains(t, content.HTML, "Central Station")
}

func TestRenderNotification_OptionalFieldsOmitted(t *testing.T) {
	item := &models.FoundItem{
		Title:      "Umbrella",
		Category:   "Accessories",
		ReporterID: "u1",
	}

	content := RenderNotification(item)

	assert.NotContains(t, content.HTML, "Description")
	assert.NotContains(t, content.HTML, "Found at")
}

func TestRenderNotification_EscapesItemFields(t *testing.T) {
	item := &models.FoundItem{
		Title:      `<script>alert("x")</script>`,
		Category:   "Electronics",
		ReporterID: "u1",
	}

	content := RenderNotification(item)

	assert.NotContains(t, content.HTML, "<script>")
	assert.Contains(t, content.HTML, "&lt;script&gt;")
}
