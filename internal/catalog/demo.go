package catalog

import "petro-catalog/internal/model"

// DemoSnapshot returns the built-in demo catalogue used when no data source
// is reachable. Returned slices are freshly allocated so callers can never
// mutate the canonical data.
func DemoSnapshot() Snapshot {
	return Snapshot{
		Categories:    append([]model.Category(nil), demoCategories...),
		Subcategories: append([]model.Subcategory(nil), demoSubcategories...),
		Products:      append([]model.Product(nil), demoProducts...),
	}
}

var demoCategories = []model.Category{
	{ID: "lab-equipment", Name: "تجهیزات آزمایشگاهی", NameEn: "Laboratory Equipment", Image: "/images/categories/lab-equipment.jpg"},
	{ID: "precision-instruments", Name: "ابزار دقیق", NameEn: "Precision Instruments", Image: "/images/categories/precision-instruments.jpg"},
	{ID: "process-equipment", Name: "تجهیزات فرآیندی", NameEn: "Process Equipment", Image: "/images/categories/process-equipment.jpg"},
	{ID: "safety-equipment", Name: "تجهیزات ایمنی", NameEn: "Safety Equipment", Image: "/images/categories/safety-equipment.jpg"},
}

var demoSubcategories = []model.Subcategory{
	{ID: "analyzers", CategoryID: "lab-equipment", Name: "آنالایزرها", NameEn: "Analyzers"},
	{ID: "chromatography", CategoryID: "lab-equipment", Name: "کروماتوگرافی", NameEn: "Chromatography"},
	{ID: "pressure-gauges", CategoryID: "precision-instruments", Name: "فشارسنج‌ها", NameEn: "Pressure Gauges"},
	{ID: "flow-meters", CategoryID: "precision-instruments", Name: "فلومترها", NameEn: "Flow Meters"},
	{ID: "heat-exchangers", CategoryID: "process-equipment", Name: "مبدل‌های حرارتی", NameEn: "Heat Exchangers"},
	{ID: "gas-detectors", CategoryID: "safety-equipment", Name: "گازسنج‌ها", NameEn: "Gas Detectors"},
}

var demoProducts = []model.Product{
	{
		ID:             "gc-2030",
		Category:       "تجهیزات آزمایشگاهی",
		CategoryEn:     "Laboratory Equipment",
		Name:           "دستگاه کروماتوگرافی گازی GC-2030",
		NameEn:         "Gas Chromatograph GC-2030",
		Description:    "دستگاه کروماتوگرافی گازی با دقت بالا برای آنالیز ترکیبات هیدروکربنی",
		DescriptionEn:  "High-precision gas chromatograph for hydrocarbon compound analysis",
		Applications:   []string{"آنالیز نفت خام", "کنترل کیفیت پالایشگاه"},
		ApplicationsEn: []string{"Crude oil analysis", "Refinery quality control"},
		Standards:      []string{"ASTM D2887", "ISO 3924"},
		Specs:          map[string]string{"detector": "FID/TCD", "column_oven": "450C max"},
		Image:          "/images/products/gc-2030.jpg",
		InStock:        true,
	},
	{
		ID:             "spectro-uv18",
		Category:       "تجهیزات آزمایشگاهی",
		CategoryEn:     "Laboratory Equipment",
		Name:           "اسپکتروفتومتر UV-1800",
		NameEn:         "UV-1800 Spectrophotometer",
		Description:    "اسپکتروفتومتر دو پرتویی برای اندازه‌گیری‌های دقیق طیفی",
		DescriptionEn:  "Double-beam spectrophotometer for precise spectral measurements",
		Applications:   []string{"آنالیز آب", "آزمایشگاه‌های کنترل کیفیت"},
		ApplicationsEn: []string{"Water analysis", "Quality control laboratories"},
		Standards:      []string{"ISO 9001"},
		Specs:          map[string]string{"wavelength_range": "190-1100 nm", "bandwidth": "1 nm"},
		Image:          "/images/products/spectro-uv18.jpg",
		InStock:        true,
	},
	{
		ID:             "flash-tester-93",
		Category:       "تجهیزات آزمایشگاهی",
		CategoryEn:     "Laboratory Equipment",
		Name:           "دستگاه تعیین نقطه اشتعال",
		NameEn:         "Flash Point Tester",
		Description:    "تعیین نقطه اشتعال فرآورده‌های نفتی به روش بسته",
		DescriptionEn:  "Closed-cup flash point determination for petroleum products",
		Applications:   []string{"آزمایش سوخت", "کنترل ایمنی محصولات"},
		ApplicationsEn: []string{"Fuel testing", "Product safety control"},
		Standards:      []string{"ASTM D93", "ISO 2719"},
		Specs:          map[string]string{"range": "ambient to 370C"},
		Image:          "/images/products/flash-tester-93.jpg",
		InStock:        false,
	},
	{
		ID:             "pt-3051",
		Category:       "ابزار دقیق",
		CategoryEn:     "Precision Instruments",
		Name:           "ترانسمیتر فشار PT-3051",
		NameEn:         "Pressure Transmitter PT-3051",
		Description:    "ترانسمیتر فشار هوشمند با خروجی HART برای خطوط فرآیندی",
		DescriptionEn:  "Smart pressure transmitter with HART output for process lines",
		Applications:   []string{"خطوط انتقال گاز", "واحدهای پالایش"},
		ApplicationsEn: []string{"Gas transmission lines", "Refining units"},
		Standards:      []string{"IEC 61508", "ATEX"},
		Specs:          map[string]string{"accuracy": "0.065%", "output": "4-20 mA HART"},
		Image:          "/images/products/pt-3051.jpg",
		InStock:        true,
	},
	{
		ID:             "fm-8800",
		Category:       "ابزار دقیق",
		CategoryEn:     "Precision Instruments",
		Name:           "فلومتر ورتکس FM-8800",
		NameEn:         "Vortex Flow Meter FM-8800",
		Description:    "فلومتر ورتکس برای اندازه‌گیری دبی بخار و گاز",
		DescriptionEn:  "Vortex flow meter for steam and gas flow measurement",
		Applications:   []string{"اندازه‌گیری بخار", "خطوط گاز"},
		ApplicationsEn: []string{"Steam measurement", "Gas lines"},
		Standards:      []string{"API", "ATEX"},
		Specs:          map[string]string{"line_size": "DN15-DN300"},
		Image:          "/images/products/fm-8800.jpg",
		InStock:        true,
	},
	{
		ID:             "hx-240",
		Category:       "تجهیزات فرآیندی",
		CategoryEn:     "Process Equipment",
		Name:           "مبدل حرارتی صفحه‌ای HX-240",
		NameEn:         "Plate Heat Exchanger HX-240",
		Description:    "مبدل حرارتی صفحه‌ای با راندمان بالا برای واحدهای فرآیندی",
		DescriptionEn:  "High-efficiency plate heat exchanger for process units",
		Applications:   []string{"خنک‌کاری فرآیند", "بازیافت حرارت"},
		ApplicationsEn: []string{"Process cooling", "Heat recovery"},
		Standards:      []string{"ASME", "ISO 9001"},
		Specs:          map[string]string{"design_pressure": "25 bar", "plate_material": "316L"},
		Image:          "/images/products/hx-240.jpg",
		InStock:        true,
	},
	{
		ID:             "gd-450",
		Category:       "تجهیزات ایمنی",
		CategoryEn:     "Safety Equipment",
		Name:           "گازسنج چهارکاره GD-450",
		NameEn:         "Multi-Gas Detector GD-450",
		Description:    "گازسنج قابل حمل برای پایش همزمان چهار گاز",
		DescriptionEn:  "Portable detector for simultaneous monitoring of four gases",
		Applications:   []string{"فضاهای بسته", "واحدهای بهره‌برداری"},
		ApplicationsEn: []string{"Confined spaces", "Production units"},
		Standards:      []string{"ATEX", "IEC"},
		Specs:          map[string]string{"gases": "O2, CO, H2S, LEL", "battery": "18h"},
		Image:          "/images/products/gd-450.jpg",
		InStock:        true,
	},
	{
		ID:             "visco-dv2",
		Category:       "تجهیزات آزمایشگاهی",
		CategoryEn:     "Laboratory Equipment",
		Name:           "ویسکومتر دیجیتال DV2",
		NameEn:         "Digital Viscometer DV2",
		Description:    "ویسکومتر چرخشی دیجیتال برای اندازه‌گیری گرانروی سیالات",
		DescriptionEn:  "Digital rotational viscometer for fluid viscosity measurement",
		Applications:   []string{"آنالیز روانکارها", "کنترل کیفیت پلیمر"},
		ApplicationsEn: []string{"Lubricant analysis", "Polymer quality control"},
		Standards:      []string{"ASTM D2196"},
		Specs:          map[string]string{"range": "1-6M cP", "accuracy": "1.0%"},
		Image:          "/images/products/visco-dv2.jpg",
		InStock:        true,
	},
}
