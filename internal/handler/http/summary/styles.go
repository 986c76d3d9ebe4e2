package summary

import (
	"net/http"

	"docbrief/internal/domain/entity"
	"docbrief/internal/handler/http/respond"
)

// StyleDTO describes one supported summary style.
type StyleDTO struct {
	Name        string `json:"name" example:"bullet"`
	DisplayName string `json:"display_name" example:"Bullet Points"`
	Description string `json:"description"`
}

// StylesHandler lists the supported summary styles.
type StylesHandler struct{}

func (StylesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	styles := entity.Styles()
	out := make([]StyleDTO, 0, len(styles))
	for _, s := range styles {
		out = append(out, StyleDTO{
			Name:        string(s),
			DisplayName: s.DisplayName(),
			Description: s.Description(),
		})
	}
	respond.JSON(w, http.StatusOK, map[string]any{"styles": out})
}
