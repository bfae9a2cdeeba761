package chart

// Literal datasets shown until custom data replaces them.
var (
	StemLabels = []string{
		"Baojun 310", "BMW i3", "Zhixiang", "Huanchi", "Lifan 530",
		"Palio", "Yuexiang V3", "Lova RV", "Audi A1", "Vios FS",
		"Xiali N7", "Venucia R30", "Heyue A13RS", "Yaris L", "Sail",
	}
	StemValues = []float64{5.9, 6.2, 6.7, 7.0, 7.0, 7.1, 7.2, 7.4, 7.5, 7.6, 7.7, 7.7, 7.7, 7.8, 7.9}

	DumbbellCities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"}
	Dumbbell2013   = []float64{0.15, 0.12, 0.18, 0.08, 0.20}
	Dumbbell2014   = []float64{0.18, 0.14, 0.16, 0.11, 0.22}

	GanttTasks = []string{
		"Project scoping", "Questionnaire design", "Pilot interviews", "Questionnaire sign-off",
		"Fieldwork", "Data entry", "Data analysis", "Report delivery",
	}
	GanttDurations = []float64{2, 1, 1, 0.5, 3, 1, 1.5, 0.5}
	GanttStarts    = []float64{0, 1.5, 2, 3, 3.5, 6.5, 7.5, 9}

	PyramidLabels = []string{"0-9", "10-19", "20-29", "30-39", "40-49", "50-59", "60-69", "70-79", "80-89", "90+"}
	PyramidMale   = []float64{50000, 45000, 60000, 70000, 65000, 55000, 40000, 25000, 10000, 2000}
	PyramidFemale = []float64{48000, 43000, 58000, 68000, 63000, 53000, 42000, 28000, 12000, 3000}

	FunnelStages = []string{"Viewed product", "Added to cart", "Created order", "Paid order", "Completed deal"}
	FunnelValues = []float64{1000, 500, 300, 200, 150}

	SankeyNodes = []string{"Salary", "Side job", "Living", "Shopping", "Study", "Sports", "Other", "Books"}
	SankeyLinks = []Link{
		{Source: 0, Target: 2, Value: 0.3},
		{Source: 0, Target: 3, Value: 0.1},
		{Source: 1, Target: 2, Value: 0.3},
		{Source: 1, Target: 4, Value: 0.3},
		{Source: 2, Target: 5, Value: 0.1},
		{Source: 3, Target: 6, Value: 0.1},
		{Source: 4, Target: 7, Value: 0.1},
		{Source: 5, Target: 6, Value: 0.1},
	}

	States = []string{
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
		"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	}
	StateMurder   = []float64{13.2, 10.0, 7.8, 8.8, 9.0, 7.9, 3.3, 5.9, 15.4, 17.4, 5.3, 2.6, 10.4, 7.2, 2.2}
	StateAssault  = []float64{236, 263, 294, 190, 276, 204, 110, 238, 335, 211, 46, 120, 262, 157, 89}
	StateUrbanPop = []float64{58, 48, 80, 50, 91, 78, 77, 72, 80, 60, 84, 57, 83, 72, 47}
)

// WaffleBaseOccupied is the occupied seat count at a 100% scale factor.
const WaffleBaseOccupied = 95
