package export

import (
	"context"
	"net/http"
)

// buildDemolitionInfo renders the survey's top-level fields, the surveyor
// table, free-text additional information, and the survey's photo
// attachments.
func buildDemolitionInfo(ctx context.Context, w *sheetWriter, summary *Summary, locale string, labels labelSet, client *http.Client) error {
	if err := w.heading(labels.SheetDemolition); err != nil {
		return err
	}

	propertyName := ""
	if summary.Building != nil {
		propertyName = summary.Building.PropertyName
	}
	if err := w.keyValue(labels.PropertyName, propertyName); err != nil {
		return err
	}
	if err := w.keyValue(labels.SurveyType, labels.SurveyTypes[summary.Survey.Type]); err != nil {
		return err
	}
	if err := w.keyValue(labels.StartDate, formatDate(summary.Survey.StartDate, labels.DateUnknown)); err != nil {
		return err
	}
	if err := w.keyValue(labels.EndDate, formatDate(summary.Survey.EndDate, labels.DateUnknown)); err != nil {
		return err
	}
	w.blank()

	if err := w.subheading(labels.Surveyors); err != nil {
		return err
	}
	if err := w.tableHead(labels.SurveyorRole, labels.SurveyorName, labels.Company,
		labels.Email, labels.Phone, labels.Visits, labels.ReportDate); err != nil {
		return err
	}
	for _, surveyor := range summary.Surveyors {
		reportDate := labels.DateUnknown
		if surveyor.ReportDate != nil {
			t := surveyor.ReportDate.Time()
			reportDate = formatDate(&t, labels.DateUnknown)
		}
		err := w.tableRow(
			surveyor.Role,
			surveyor.FirstName+" "+surveyor.LastName,
			surveyor.Company,
			surveyor.Email,
			surveyor.Phone,
			intOrEmpty(surveyor.Visits),
			reportDate,
		)
		if err != nil {
			return err
		}
	}
	w.blank()

	if err := w.keyValue(labels.AdditionalInfo, summary.Survey.AdditionalInformation); err != nil {
		return err
	}
	w.blank()

	if len(summary.Attachments) == 0 {
		return nil
	}
	if err := w.subheading(labels.Attachments); err != nil {
		return err
	}
	refs := make([]string, len(summary.Attachments))
	for i, attachment := range summary.Attachments {
		refs[i] = attachment.URL
	}
	for _, img := range loadImages(ctx, client, refs) {
		if err := w.picture(img); err != nil {
			return err
		}
	}
	return nil
}
