package catalog

// profileTable contains every supported exercise with its form
// requirements. Key-angle and alignment-check order is significant: the
// form checker emits feedback in this order.
var profileTable = []Profile{
	// ============================================================================
	// LOWER BODY
	// ============================================================================
	{
		Key:       "squat",
		KeyAngles: []AngleName{AngleKnee, AngleHip, AngleBack},
		Thresholds: map[AngleName]Threshold{
			AngleKnee: {Min: 70, Max: 110, Optimal: 90},
			AngleHip:  {Min: 45, Max: 90, Optimal: 70},
			AngleBack: {Min: 160, Max: 180, Optimal: 170},
		},
		AlignmentChecks: []CheckID{CheckKneeAlignment, CheckBackStraight},
		MovementPattern: "vertical",
		PrimaryMuscles:  []string{"quadriceps", "glutes", "hamstrings"},
	},
	{
		Key:       "lunge",
		KeyAngles: []AngleName{AngleFrontKnee, AngleBackKnee, AngleHip},
		Thresholds: map[AngleName]Threshold{
			AngleFrontKnee: {Min: 80, Max: 110, Optimal: 90},
			AngleBackKnee:  {Min: 80, Max: 110, Optimal: 90},
			AngleHip:       {Min: 45, Max: 90, Optimal: 70},
		},
		AlignmentChecks: []CheckID{CheckKneeAlignment, CheckHipLevel},
		MovementPattern: "forward",
		PrimaryMuscles:  []string{"quadriceps", "glutes", "hamstrings"},
	},
	{
		Key:       "deadlift",
		KeyAngles: []AngleName{AngleHip, AngleKnee, AngleBack},
		Thresholds: map[AngleName]Threshold{
			AngleHip:  {Min: 30, Max: 60, Optimal: 45},
			AngleKnee: {Min: 100, Max: 140, Optimal: 120},
			AngleBack: {Min: 160, Max: 180, Optimal: 170},
		},
		AlignmentChecks: []CheckID{CheckBackStraight, CheckBarPath},
		MovementPattern: "hinge",
		PrimaryMuscles:  []string{"hamstrings", "glutes", "lower_back"},
	},

	// ============================================================================
	// UPPER BODY
	// ============================================================================
	{
		Key:       "pushup",
		KeyAngles: []AngleName{AngleElbow, AngleShoulder, AngleBack},
		Thresholds: map[AngleName]Threshold{
			AngleElbow:    {Min: 80, Max: 100, Optimal: 90},
			AngleShoulder: {Min: 160, Max: 180, Optimal: 170},
			AngleBack:     {Min: 160, Max: 180, Optimal: 175},
		},
		AlignmentChecks: []CheckID{CheckBodyStraight, CheckElbowPosition},
		MovementPattern: "horizontal",
		PrimaryMuscles:  []string{"chest", "triceps", "shoulders"},
	},
	{
		Key:       "bicep_curl",
		KeyAngles: []AngleName{AngleElbow, AngleShoulder, AngleWrist},
		Thresholds: map[AngleName]Threshold{
			AngleElbow:    {Min: 30, Max: 90, Optimal: 60},
			AngleShoulder: {Min: 160, Max: 180, Optimal: 170},
			AngleWrist:    {Min: 160, Max: 180, Optimal: 170},
		},
		AlignmentChecks: []CheckID{CheckElbowFixed, CheckWristStraight},
		MovementPattern: "isolated",
		PrimaryMuscles:  []string{"biceps", "forearms"},
	},
	{
		Key:       "overhead_press",
		KeyAngles: []AngleName{AngleShoulder, AngleElbow, AngleWrist},
		Thresholds: map[AngleName]Threshold{
			AngleShoulder: {Min: 160, Max: 180, Optimal: 170},
			AngleElbow:    {Min: 80, Max: 100, Optimal: 90},
			AngleWrist:    {Min: 160, Max: 180, Optimal: 170},
		},
		AlignmentChecks: []CheckID{CheckShoulderAlignment, CheckWristStraight},
		MovementPattern: "vertical",
		PrimaryMuscles:  []string{"shoulders", "triceps"},
	},
	{
		Key:       "row",
		KeyAngles: []AngleName{AngleShoulder, AngleElbow, AngleBack},
		Thresholds: map[AngleName]Threshold{
			AngleShoulder: {Min: 45, Max: 90, Optimal: 70},
			AngleElbow:    {Min: 80, Max: 120, Optimal: 100},
			AngleBack:     {Min: 160, Max: 180, Optimal: 170},
		},
		AlignmentChecks: []CheckID{CheckBackStraight, CheckShoulderBlades},
		MovementPattern: "horizontal",
		PrimaryMuscles:  []string{"back", "biceps", "rear_deltoids"},
	},

	// ============================================================================
	// CORE AND FULL BODY
	// ============================================================================
	{
		Key:       "plank",
		KeyAngles: []AngleName{AngleShoulder, AngleHip, AngleAnkle},
		Thresholds: map[AngleName]Threshold{
			AngleShoulder: {Min: 160, Max: 180, Optimal: 170},
			AngleHip:      {Min: 160, Max: 180, Optimal: 170},
			AngleAnkle:    {Min: 160, Max: 180, Optimal: 170},
		},
		AlignmentChecks: []CheckID{CheckBodyStraight, CheckCoreEngaged},
		MovementPattern: "static",
		PrimaryMuscles:  []string{"core", "shoulders", "glutes"},
	},
	{
		Key:       "burpee",
		KeyAngles: []AngleName{AngleKnee, AngleHip, AngleShoulder},
		Thresholds: map[AngleName]Threshold{
			AngleKnee:     {Min: 70, Max: 110, Optimal: 90},
			AngleHip:      {Min: 45, Max: 90, Optimal: 70},
			AngleShoulder: {Min: 160, Max: 180, Optimal: 170},
		},
		AlignmentChecks: []CheckID{CheckFullRange, CheckExplosiveMovement},
		MovementPattern: "compound",
		PrimaryMuscles:  []string{"full_body"},
	},
	{
		Key:       "mountain_climber",
		KeyAngles: []AngleName{AngleShoulder, AngleHip, AngleKnee},
		Thresholds: map[AngleName]Threshold{
			AngleShoulder: {Min: 160, Max: 180, Optimal: 170},
			AngleHip:      {Min: 160, Max: 180, Optimal: 170},
			AngleKnee:     {Min: 80, Max: 120, Optimal: 100},
		},
		AlignmentChecks: []CheckID{CheckCoreStable, CheckAlternatingLegs},
		MovementPattern: "dynamic",
		PrimaryMuscles:  []string{"core", "shoulders", "hip_flexors"},
	},
}

// patternTable pairs every profile with its detection indicators.
// Primary indicators must be evaluable from a single snapshot; cues that
// need motion over time live under Secondary.
var patternTable = map[string]Pattern{
	"squat": {
		Primary:   []IndicatorID{IndKneeBend, IndHipDrop},
		Secondary: []IndicatorID{IndVerticalMovement, IndFeetShoulderWidth},
	},
	"pushup": {
		Primary:   []IndicatorID{IndHorizontalPosition, IndArmBend},
		Secondary: []IndicatorID{IndBodyStraight, IndElbowTuck},
	},
	"lunge": {
		Primary:   []IndicatorID{IndFrontKneeBend, IndBackKneeDrop},
		Secondary: []IndicatorID{IndHipDrop, IndBackKneeLow},
	},
	"bicep_curl": {
		Primary:   []IndicatorID{IndArmCurl, IndElbowFixed},
		Secondary: []IndicatorID{IndWristNeutral, IndShoulderStable},
	},
	"plank": {
		Primary:   []IndicatorID{IndStaticPosition, IndBodyStraight},
		Secondary: []IndicatorID{IndCoreEngaged, IndShoulderStable},
	},
	"deadlift": {
		Primary:   []IndicatorID{IndHipHinge, IndBackStraight},
		Secondary: []IndicatorID{IndKneeBend, IndBarPath},
	},
	"overhead_press": {
		Primary:   []IndicatorID{IndArmExtension, IndShoulderPress},
		Secondary: []IndicatorID{IndWristNeutral, IndCoreStable},
	},
	"row": {
		Primary:   []IndicatorID{IndArmPull, IndShoulderBladeSqueeze},
		Secondary: []IndicatorID{IndBackStraight, IndElbowBend},
	},
	"burpee": {
		Primary:   []IndicatorID{IndSquatDrop, IndPushupPosition, IndJumpExtension},
		Secondary: []IndicatorID{IndFullRange, IndExplosive},
	},
	"mountain_climber": {
		Primary:   []IndicatorID{IndKneeDrive, IndPlankHips},
		Secondary: []IndicatorID{IndAlternatingLegs, IndShoulderStable},
	},
}
