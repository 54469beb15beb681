package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
)

// FallbackFileName is used when the surveyed building has no property name.
const FallbackFileName = "unnamed"

// Assembler owns the workbook for the duration of one export call and runs
// the section builders against it in a fixed order.
type Assembler struct {
	client *http.Client
}

func NewAssembler() *Assembler {
	return &Assembler{client: http.DefaultClient}
}

// NewAssemblerWithClient lets callers supply the HTTP client used for
// attachment image fetches.
func NewAssemblerWithClient(client *http.Client) *Assembler {
	return &Assembler{client: client}
}

type sectionBuilder func(ctx context.Context, w *sheetWriter, summary *Summary, locale string, labels labelSet, client *http.Client) error

// Assemble builds the five document sections in order and serializes the
// workbook to a buffer. Builders run strictly in sequence; they share the
// workbook and each appends one section with shared page chrome.
func (a *Assembler) Assemble(ctx context.Context, summary *Summary, locale string) (*bytes.Buffer, error) {
	labels := labelsFor(locale)

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	header := a.sectionHeader(summary, locale, labels)
	footer := fmt.Sprintf("&C%s &P / &N", labels.Page)

	sections := []struct {
		name  string
		build sectionBuilder
	}{
		{labels.SheetDemolition, buildDemolitionInfo},
		{labels.SheetBuilding, buildOwnerBuildingInfo},
		{labels.SheetReusables, buildReusableMaterials},
		{labels.SheetWastes, buildWasteMaterials},
		{labels.SheetHazardous, buildHazardousMaterials},
	}
	for _, section := range sections {
		w, err := newSection(f, section.name, styles, header, footer)
		if err != nil {
			return nil, err
		}
		if err := section.build(ctx, w, summary, locale, labels, a.client); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, err := f.GetSheetIndex(labels.SheetDemolition)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	return f.WriteToBuffer()
}

// sectionHeader renders the shared page header: last modified date, ready
// date when the survey is done, and the creator.
func (a *Assembler) sectionHeader(summary *Summary, locale string, labels labelSet) string {
	modified := summary.Survey.UpdatedAt.Format("02.01.2006")

	ready := ""
	if summary.Survey.MarkedAsDone && summary.Survey.EndDate != nil {
		ready = summary.Survey.EndDate.Format("02.01.2006")
	}

	creator := summary.Survey.CreatorID.String()
	if summary.Creator != nil {
		creator = summary.Creator.Name
	}

	return fmt.Sprintf("&L%s %s&C%s %s&R%s: %s",
		labels.Modified, modified, labels.Ready, ready, labels.Creator, creator)
}

// FileName derives the download name from the building's property name,
// with a fixed fallback when none is set.
func FileName(summary *Summary) string {
	name := ""
	if summary.Building != nil {
		name = summary.Building.PropertyName
	}
	if name == "" {
		name = FallbackFileName
	}
	return sanitizeFileName(name) + ".xlsx"
}

// sanitizeFileName replaces characters that are invalid in filenames.
func sanitizeFileName(name string) string {
	replacements := map[rune]rune{
		'/':  '_',
		'\\': '_',
		':':  '_',
		'*':  '_',
		'?':  '_',
		'"':  '_',
		'<':  '_',
		'>':  '_',
		'|':  '_',
		' ':  '_',
	}

	out := make([]rune, 0, len(name))
	for _, r := range name {
		if replacement, ok := replacements[r]; ok {
			out = append(out, replacement)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
