package catalog

// Indicator identifiers referenced by patternTable.
const (
	IndKneeBend             IndicatorID = "knee_bend"
	IndHipDrop              IndicatorID = "hip_drop"
	IndHorizontalPosition   IndicatorID = "horizontal_position"
	IndArmBend              IndicatorID = "arm_bend"
	IndStaticPosition       IndicatorID = "static_position"
	IndFrontKneeBend        IndicatorID = "front_knee_bend"
	IndBackKneeDrop         IndicatorID = "back_knee_drop"
	IndArmCurl              IndicatorID = "arm_curl"
	IndElbowFixed           IndicatorID = "elbow_fixed"
	IndBodyStraight         IndicatorID = "body_straight"
	IndHipHinge             IndicatorID = "hip_hinge"
	IndBackStraight         IndicatorID = "back_straight"
	IndArmExtension         IndicatorID = "arm_extension"
	IndShoulderPress        IndicatorID = "shoulder_press"
	IndArmPull              IndicatorID = "arm_pull"
	IndShoulderBladeSqueeze IndicatorID = "shoulder_blade_squeeze"
	IndSquatDrop            IndicatorID = "squat_drop"
	IndPushupPosition       IndicatorID = "pushup_position"
	IndJumpExtension        IndicatorID = "jump_extension"
	IndKneeDrive            IndicatorID = "knee_drive"
	IndPlankHips            IndicatorID = "plank_hips"
	IndElbowBend            IndicatorID = "elbow_bend"

	// Informational indicators: no snapshot predicate.
	IndVerticalMovement  IndicatorID = "vertical_movement"
	IndFeetShoulderWidth IndicatorID = "feet_shoulder_width"
	IndElbowTuck         IndicatorID = "elbow_tuck"
	IndBackKneeLow       IndicatorID = "back_knee_low"
	IndWristNeutral      IndicatorID = "wrist_neutral"
	IndShoulderStable    IndicatorID = "shoulder_stable"
	IndCoreEngaged       IndicatorID = "core_engaged"
	IndBarPath           IndicatorID = "bar_path"
	IndCoreStable        IndicatorID = "core_stable"
	IndFullRange         IndicatorID = "full_range"
	IndExplosive         IndicatorID = "explosive"
	IndAlternatingLegs   IndicatorID = "alternating_legs"
)

// indicatorTable defines every indicator predicate. Cutoffs are derived
// from the profile thresholds: a flexed joint reads well under its
// extended value, an extended joint well over its flexed value.
var indicatorTable = map[IndicatorID]Indicator{
	IndKneeBend:             {Angle: AngleKnee, Below: true, Cutoff: 120, Description: "knees flexed"},
	IndHipDrop:              {Angle: AngleHip, Below: true, Cutoff: 90, Description: "hips dropped below standing height"},
	IndHorizontalPosition:   {Angle: AngleShoulder, Below: false, Cutoff: 160, Description: "body supported horizontally"},
	IndArmBend:              {Angle: AngleElbow, Below: true, Cutoff: 120, Description: "elbows flexed"},
	IndStaticPosition:       {Angle: AngleBack, Below: false, Cutoff: 160, Description: "trunk held straight"},
	IndFrontKneeBend:        {Angle: AngleFrontKnee, Below: true, Cutoff: 110, Description: "front knee flexed"},
	IndBackKneeDrop:         {Angle: AngleBackKnee, Below: true, Cutoff: 110, Description: "back knee lowered"},
	IndArmCurl:              {Angle: AngleElbow, Below: true, Cutoff: 90, Description: "forearm curled toward shoulder"},
	IndElbowFixed:           {Angle: AngleShoulder, Below: false, Cutoff: 160, Description: "upper arm pinned to the torso"},
	IndBodyStraight:         {Angle: AngleHip, Below: false, Cutoff: 160, Description: "hips in line with shoulders and ankles"},
	IndHipHinge:             {Angle: AngleHip, Below: true, Cutoff: 60, Description: "torso hinged at the hips"},
	IndBackStraight:         {Angle: AngleBack, Below: false, Cutoff: 160, Description: "back held flat"},
	IndArmExtension:         {Angle: AngleElbow, Below: false, Cutoff: 160, Description: "arms locked out overhead"},
	IndShoulderPress:        {Angle: AngleShoulder, Below: false, Cutoff: 160, Description: "arms pressed overhead"},
	IndArmPull:              {Angle: AngleElbow, Below: true, Cutoff: 120, Description: "elbows pulled past the torso"},
	IndShoulderBladeSqueeze: {Angle: AngleShoulder, Below: true, Cutoff: 90, Description: "upper arms drawn back"},
	IndSquatDrop:            {Angle: AngleKnee, Below: true, Cutoff: 110, Description: "dropped into a squat"},
	IndPushupPosition:       {Angle: AngleElbow, Below: true, Cutoff: 120, Description: "lowered into a pushup"},
	IndJumpExtension:        {Angle: AngleHip, Below: false, Cutoff: 160, Description: "hips fully extended for the jump"},
	IndKneeDrive:            {Angle: AngleKnee, Below: true, Cutoff: 120, Description: "knee driven toward the chest"},
	IndPlankHips:            {Angle: AngleHip, Below: false, Cutoff: 160, Description: "hips held in a plank line"},
	IndElbowBend:            {Angle: AngleElbow, Below: true, Cutoff: 120, Description: "elbows bent through the pull"},

	IndVerticalMovement:  {Description: "move straight up and down"},
	IndFeetShoulderWidth: {Description: "feet about shoulder width apart"},
	IndElbowTuck:         {Description: "elbows tucked close to the body"},
	IndBackKneeLow:       {Description: "back knee hovering just above the floor"},
	IndWristNeutral:      {Description: "wrists kept neutral"},
	IndShoulderStable:    {Description: "shoulders kept stable"},
	IndCoreEngaged:       {Description: "core braced throughout"},
	IndBarPath:           {Description: "bar travels in a straight vertical line"},
	IndCoreStable:        {Description: "core held rigid"},
	IndFullRange:         {Description: "full range of motion on every rep"},
	IndExplosive:         {Description: "explosive but controlled tempo"},
	IndAlternatingLegs:   {Description: "legs alternate in a steady rhythm"},
}

// Alignment check identifiers referenced by profileTable.
const (
	CheckKneeAlignment     CheckID = "knee_alignment"
	CheckBackStraight      CheckID = "back_straight"
	CheckBodyStraight      CheckID = "body_straight"
	CheckElbowPosition     CheckID = "elbow_position"
	CheckElbowFixed        CheckID = "elbow_fixed"
	CheckWristStraight     CheckID = "wrist_straight"
	CheckHipLevel          CheckID = "hip_level"
	CheckCoreEngaged       CheckID = "core_engaged"
	CheckBarPath           CheckID = "bar_path"
	CheckShoulderAlignment CheckID = "shoulder_alignment"
	CheckShoulderBlades    CheckID = "shoulder_blades"
	CheckFullRange         CheckID = "full_range"
	CheckExplosiveMovement CheckID = "explosive_movement"
	CheckCoreStable        CheckID = "core_stable"
	CheckAlternatingLegs   CheckID = "alternating_legs"
)

// checkTable defines every alignment check. Gated checks fire when their
// angle is present and out of line; checks without a gate are advisory
// coaching that 2D angles cannot verify.
var checkTable = map[CheckID]AlignmentCheck{
	CheckBackStraight: {
		Feedback: "Keep your back straight",
		Gate:     &Gate{Angle: AngleBack, Below: true, Cutoff: 160},
	},
	CheckBodyStraight: {
		Feedback: "Keep your body in a straight line",
		Gate:     &Gate{Angle: AngleShoulder, Below: true, Cutoff: 160},
	},
	CheckWristStraight: {
		Feedback: "Keep your wrists straight",
		Gate:     &Gate{Angle: AngleWrist, Below: true, Cutoff: 160},
	},
	CheckCoreEngaged: {
		Feedback: "Keep your core engaged - don't let your hips sag",
		Gate:     &Gate{Angle: AngleHip, Below: true, Cutoff: 160},
	},
	CheckShoulderAlignment: {
		Feedback: "Press directly overhead - keep your shoulders aligned",
		Gate:     &Gate{Angle: AngleShoulder, Below: true, Cutoff: 160},
	},
	CheckCoreStable: {
		Feedback: "Keep your core stable and your back flat",
		Gate:     &Gate{Angle: AngleBack, Below: true, Cutoff: 160},
	},

	CheckKneeAlignment:     {Feedback: "Ensure knees are aligned with your feet"},
	CheckElbowPosition:     {Feedback: "Keep your elbows at roughly 45 degrees from your torso"},
	CheckElbowFixed:        {Feedback: "Keep your elbows in a fixed position"},
	CheckHipLevel:          {Feedback: "Keep your hips level"},
	CheckBarPath:           {Feedback: "Keep the bar close to your body"},
	CheckShoulderBlades:    {Feedback: "Squeeze your shoulder blades together at the top"},
	CheckFullRange:         {Feedback: "Use the full range of motion"},
	CheckExplosiveMovement: {Feedback: "Drive explosively through the jump"},
	CheckAlternatingLegs:   {Feedback: "Alternate legs in a steady rhythm"},
}
