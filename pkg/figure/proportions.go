package figure

// Proportions are the fixed body measurements of the figure, in pixels.
type Proportions struct {
	HeadRadius  float64
	TorsoWidth  float64
	TorsoHeight float64
	ArmLength   float64
	ArmWidth    float64
	LegLength   float64
	LegWidth    float64
	// ShoulderGap is the horizontal space between the torso edge and a
	// shoulder.
	ShoulderGap float64
}

// Standard is the only body shape the tools draw.
var Standard = Proportions{
	HeadRadius:  30,
	TorsoWidth:  80,
	TorsoHeight: 120,
	ArmLength:   80,
	ArmWidth:    20,
	LegLength:   90,
	LegWidth:    18,
	ShoulderGap: 15,
}
