package export

import (
	"context"
	"net/http"
	"strings"
)

// buildReusableMaterials renders one block per reusable item followed by
// that item's photos. Image loads within one item run concurrently; items
// themselves are appended in order.
func buildReusableMaterials(ctx context.Context, w *sheetWriter, summary *Summary, locale string, labels labelSet, client *http.Client) error {
	if err := w.heading(labels.SheetReusables); err != nil {
		return err
	}

	for _, item := range summary.Reusables {
		materialName := ""
		if m := reusableMaterialByID(summary.ReusableMaterials, item.ReusableMaterialID); m != nil {
			materialName = localizedValue(m.LocalizedNames, locale)
		}

		if err := w.keyValue(labels.Material, materialName); err != nil {
			return err
		}
		if err := w.keyValue(labels.Usability, labels.Usabilities[item.Usability]); err != nil {
			return err
		}
		if err := w.keyValue(labels.ComponentName, item.ComponentName); err != nil {
			return err
		}
		if err := w.keyValue(labels.Amount, formatAmount(item.Amount, item.Unit, labels)); err != nil {
			return err
		}
		if err := w.keyValue(labels.AmountAsWaste, floatOrEmpty(item.AmountAsWaste)); err != nil {
			return err
		}
		if err := w.keyValue(labels.Description, item.Description); err != nil {
			return err
		}

		for _, img := range loadImages(ctx, client, item.Images) {
			if err := w.picture(img); err != nil {
				return err
			}
		}
		w.blank()
	}
	return nil
}

// formatAmount joins an amount with its localized unit label; either half
// may be empty on its own.
func formatAmount(amount float64, unit string, labels labelSet) string {
	return strings.TrimSpace(floatOrEmpty(amount) + " " + labels.Units[unit])
}
