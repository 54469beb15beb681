package export

import (
	"context"
	"net/http"
)

// buildWasteMaterials renders the waste inventory as one table row per
// item: material, intended usage, composite EWC code, amount, description.
func buildWasteMaterials(ctx context.Context, w *sheetWriter, summary *Summary, locale string, labels labelSet, client *http.Client) error {
	if err := w.heading(labels.SheetWastes); err != nil {
		return err
	}
	if err := w.tableHead(labels.Material, labels.WasteUsage, labels.EwcCode,
		labels.Amount, labels.Description); err != nil {
		return err
	}

	for _, item := range summary.Wastes {
		materialName := ""
		code := ""
		if m := wasteMaterialByID(summary.WasteMaterials, item.WasteMaterialID); m != nil {
			materialName = localizedValue(m.LocalizedNames, locale)
			code = ewcCode(summary.WasteCategories, m.WasteCategoryID, m.EwcSpecificationCode)
		}
		usageName := ""
		if u := usageByID(summary.Usages, item.UsageID); u != nil {
			usageName = localizedValue(u.LocalizedNames, locale)
		}

		err := w.tableRow(materialName, usageName, code,
			formatAmount(item.Amount, item.Unit, labels), item.Description)
		if err != nil {
			return err
		}
	}
	return nil
}

// buildHazardousMaterials is structurally identical to buildWasteMaterials
// with the specifier dictionary in place of usages.
func buildHazardousMaterials(ctx context.Context, w *sheetWriter, summary *Summary, locale string, labels labelSet, client *http.Client) error {
	if err := w.heading(labels.SheetHazardous); err != nil {
		return err
	}
	if err := w.tableHead(labels.Material, labels.WasteSpec, labels.EwcCode,
		labels.Amount, labels.Description); err != nil {
		return err
	}

	for _, item := range summary.HazardousWastes {
		materialName := ""
		code := ""
		if m := hazardousMaterialByID(summary.HazardousMaterials, item.HazardousMaterialID); m != nil {
			materialName = localizedValue(m.LocalizedNames, locale)
			code = ewcCode(summary.WasteCategories, m.WasteCategoryID, m.EwcSpecificationCode)
		}
		specifierName := ""
		if s := wasteSpecifierByID(summary.WasteSpecifiers, item.WasteSpecifierID); s != nil {
			specifierName = localizedValue(s.LocalizedNames, locale)
		}

		err := w.tableRow(materialName, specifierName, code,
			formatAmount(item.Amount, item.Unit, labels), item.Description)
		if err != nil {
			return err
		}
	}
	return nil
}
