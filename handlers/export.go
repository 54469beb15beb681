package handlers

import (
	"fmt"
	"net/http"

	"purku.fi/survey/config"
	"purku.fi/survey/export"
)

// ExportSurvey streams the survey as a formatted workbook download. The
// summary is loaded in full up front; the pipeline itself performs no
// database access, only the attachment image fetches.
func ExportSurvey(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}

	locale := r.URL.Query().Get("lang")
	if locale == "" {
		locale = "fi"
	}

	summary, err := export.LoadSummary(config.DB, survey.ID)
	if err != nil {
		http.Error(w, "failed to load survey data", http.StatusInternalServerError)
		return
	}

	assembler := export.NewAssembler()
	buffer, err := assembler.Assemble(r.Context(), summary, locale)
	if err != nil {
		http.Error(w, "failed to generate document", http.StatusInternalServerError)
		return
	}

	filename := export.FileName(summary)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", contentDisposition(filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// contentDisposition quotes the filename so the header stays well-formed
// regardless of what sanitization left in the name.
func contentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
