package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/tacworldhq/storefront-backend/pkg/enums"
)

// FlagshipProductID is the duty holster surfaced by the fit finder when a
// firearm has a catalog match. Kept in the seed so the recommendation stays
// stable across catalog reorderings.
const FlagshipProductID = "h201"

var seedManufacturers = []string{
	"Glock", "Sig Sauer", "Smith & Wesson", "Colt", "CZ", "H&K", "Walther", "Springfield", "Beretta",
}

var seedGunModels = map[string][]string{
	"Glock":          {"G19 Gen 3/4/5", "G17", "G43/43X", "G48", "G26"},
	"Sig Sauer":      {"P365", "P365XL", "P320 Compact", "P320 Full", "P226", "P229"},
	"Smith & Wesson": {"M&P Shield Plus", "M&P 2.0 Compact", "J-Frame Revolver"},
	"Colt":           {`1911 Government 5"`, `1911 Commander 4.25"`, `Python 4"`},
	"CZ":             {"P-10 C", "75 SP-01", "Shadow 2"},
	"H&K":            {"VP9", "P30", "USP Compact"},
	"Walther":        {"PDP Compact", "PPQ M2"},
	"Springfield":    {"Hellcat", "Hellcat Pro", "Echelon"},
	"Beretta":        {"92FS", "M9A4", "PX4 Storm"},
}

func defaultOptions() []ProductOption {
	return []ProductOption{
		{ID: "hand", Name: "Draw Hand", Values: []string{"Right Hand", "Left Hand"}},
		{ID: "color", Name: "Leather Finish", Values: []string{"Mahogany", "Black"}},
	}
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func seedProducts() []Product {
	return []Product{
		{
			ID:          "gcode-xst",
			Name:        "G-Code XST KYDEX Holster for Beretta 92FS",
			Category:    enums.HolsterCategoryDuty,
			Price:       price("65.00"),
			Description: "Precision molded Kydex duty holster featuring G-Code's proprietary XST retention system. Rapid-access security for the Beretta 92FS platform.",
			Image:       "screenshot_1741131114.png",
			Rating:      4.8,
			Reviews:     24,
			Features:    []string{"Kydex Shell", "XST Retention", "Duty Ready"},
			Options:     defaultOptions(),
		},
		{
			ID:          "h201",
			Name:        "Falco Professional Leather Duty Holster Model H201",
			Category:    enums.HolsterCategoryDuty,
			Price:       price("129.95"),
			Description: "Professional grade full-grain leather duty holster. Hand-boned for specific firearm fit with reinforced stitching for long-term operational durability.",
			Image:       "screenshot_1741131116.png",
			Rating:      4.9,
			Reviews:     42,
			Features:    []string{"Full Grain Leather", "Hand-Boned", "Level 1 Retention"},
			Options:     defaultOptions(),
			BestSeller:  true,
		},
		{
			ID:          "h202",
			Name:        "Falco Duty leather holster for gun with light Model H202",
			Category:    enums.HolsterCategoryDuty,
			Price:       price("139.95"),
			Description: "Premium leather duty holster designed to accommodate modern weapon-mounted lights. Combines old-world materials with tactical light compatibility.",
			Image:       "screenshot_1741131117.png",
			Rating:      4.8,
			Reviews:     31,
			Features:    []string{"Light Compatible", "Reinforced Mouth", "Steel Core Support"},
			Options:     defaultOptions(),
		},
		{
			ID:          "c909",
			Name:        "Falco LVL II Pancake OWB KYDEX Holster Model C909 2021",
			Category:    enums.HolsterCategoryDuty,
			Price:       price("199.95"),
			Description: "Advanced Level II retention Kydex pancake holster. Offers high security with a mechanical thumb release in a slim, body-hugging OWB profile.",
			Image:       "screenshot_1741131118.png",
			Rating:      5.0,
			Reviews:     18,
			Features:    []string{"Kydex Construction", "Level II Retention", "Slim Profile"},
			Options:     defaultOptions(),
		},
		{
			ID:          "c904",
			Name:        "Falco Kydex Belt Holster On Leather Platform model C904 2021",
			Category:    enums.HolsterCategoryHybrid,
			Price:       price("119.95"),
			Description: "Falco's best leather platform holsters are made with belt slits on sides that curve the holster comfortably around your body shape when threaded on your gun belt.",
			Image:       "screenshot_1741131119.png",
			Rating:      4.9,
			Reviews:     56,
			Features:    []string{"Leather Platform", "Kydex Shell", "Body-Contouring"},
			Options:     defaultOptions(),
		},
		{
			ID:          "c908",
			Name:        "Falco Compact Hybrid OWB Holster Model C908 2021",
			Category:    enums.HolsterCategoryHybrid,
			Price:       price("109.95"),
			Description: "Minimalist hybrid OWB holster designed for sub-compact firearms. Features a premium leather backing for comfort and a rigid Kydex front for fast draw.",
			Image:       "screenshot_1741131114.png",
			Rating:      4.7,
			Reviews:     29,
			Features:    []string{"Deep Concealment", "Compact Base", "Adjustable Tension"},
			Options:     defaultOptions(),
		},
		{
			ID:          "d632l",
			Name:        "Falco Horizontal Shoulder Holster for Guns with Light and Red Dot Model D632L",
			Category:    enums.HolsterCategoryShoulder,
			Price:       price("259.95"),
			Description: "Maximum capacity horizontal shoulder system. Full compatibility with weapon lights and red dot optics. Includes balanced double magazine pouch.",
			Image:       "screenshot_1741131116.png",
			Rating:      5.0,
			Reviews:     14,
			Features:    []string{"Light/Optic Ready", "Balanced Harness", "Horizontal Draw"},
			Options:     defaultOptions(),
		},
		{
			ID:          "d602r",
			Name:        "Falco Leather Horizontal Shoulder Holster for Guns with Red Dot Model D602R",
			Category:    enums.HolsterCategoryShoulder,
			Price:       price("215.95"),
			Description: "Precision horizontal shoulder holster specifically cut for slide-mounted red dot sights. Hand-molded leather ensures perfect firearm retention.",
			Image:       "screenshot_1741131117.png",
			Rating:      4.9,
			Reviews:     38,
			Features:    []string{"Optic Cut", "Adjustable Harness", "Premium Cowhide"},
			Options:     defaultOptions(),
		},
		{
			ID:          "d602l",
			Name:        "Falco Leather Horizontal Shoulder Holster for Guns with Light / Laser Model D602L",
			Category:    enums.HolsterCategoryShoulder,
			Price:       price("219.95"),
			Description: "Horizontal shoulder carry solution for firearms equipped with underslung lights or lasers. Hand-crafted for all-day concealment and comfort.",
			Image:       "screenshot_1741131118.png",
			Rating:      4.8,
			Reviews:     25,
			Features:    []string{"Laser/Light Support", "Custom Molded", "Horizontal Profile"},
			Options:     defaultOptions(),
		},
		{
			ID:          "d109",
			Name:        "Falco FORESTER Style Chest Leather Holster, Model D109 Forester",
			Category:    enums.HolsterCategoryShoulder,
			Price:       price("219.95"),
			Description: "Premium chest-mount holster designed for outdoor and hiking use. Keeps the firearm accessible while wearing packs or heavy outerwear.",
			Image:       "screenshot_1741131115.png",
			Rating:      4.8,
			Reviews:     22,
			Features:    []string{"Chest Mounted", "Rugged Stitching", "Quick Release"},
			Options:     defaultOptions(),
		},
		{
			ID:          "d209",
			Name:        "Falco FORESTER Style Chest Leather Holster, Model D209 Forester",
			Category:    enums.HolsterCategoryShoulder,
			Price:       price("195.95"),
			Description: "Optimized chest holster for smaller frame firearms. The Forester series ensures your weapon is centered on the torso for maximum stability during movement.",
			Image:       "screenshot_1741131120.png",
			Rating:      4.7,
			Reviews:     19,
			Features:    []string{"Lightweight Design", "Centered Carry", "Adjustable Straps"},
			Options:     defaultOptions(),
		},
	}
}
