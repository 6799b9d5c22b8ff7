package model

// Simulation is the predicted social reaction to the analyzed text.
type Simulation struct {
	// EmotionDistribution maps emotion codes to fractions in [0,1].
	EmotionDistribution map[string]float64 `json:"emotion_distribution"`

	// StanceDistribution maps stance codes to fractions in [0,1].
	StanceDistribution map[string]float64 `json:"stance_distribution"`

	// Narratives are the predicted narrative branches, ordered by the
	// simulator.
	Narratives []Narrative `json:"narratives"`

	// Timeline is the predicted hour-by-hour spread of the story.
	Timeline []TimelineEntry `json:"timeline"`

	// Flashpoints are predicted escalation triggers.
	Flashpoints []string `json:"flashpoints"`

	// EmotionDrivers and StanceDrivers name the factors the simulator
	// considered decisive for the distributions above.
	EmotionDrivers []string `json:"emotion_drivers"`
	StanceDrivers  []string `json:"stance_drivers"`

	// Suggestion is the simulator's response recommendation.
	Suggestion Suggestion `json:"suggestion"`
}

// Narrative is one predicted narrative branch of the public reaction.
type Narrative struct {
	// Title names the narrative.
	Title string `json:"title"`

	// Probability is the branch probability in [0,1].
	Probability float64 `json:"probability"`

	// Stance is the stance code of the narrative's audience.
	Stance string `json:"stance,omitempty"`

	// TriggerKeywords are the keywords expected to trigger the branch.
	TriggerKeywords []string `json:"trigger_keywords"`

	// SampleMessage is a representative message for the branch.
	SampleMessage string `json:"sample_message,omitempty"`
}

// TimelineEntry is one step of the predicted spread timeline.
type TimelineEntry struct {
	// Hour is the offset in hours from publication.
	Hour int `json:"hour"`

	// Event describes what happens at this point.
	Event string `json:"event"`

	// ExpectedReach estimates the audience size reached.
	ExpectedReach string `json:"expected_reach"`
}

// Suggestion is the simulator's recommended response plan.
type Suggestion struct {
	// Summary is the one-line recommendation.
	Summary string `json:"summary,omitempty"`

	// Actions are the concrete recommended actions.
	Actions []Action `json:"actions"`
}

// Action is a single recommended response action.
type Action struct {
	// Priority is the priority code ("urgent", "high", "medium").
	// Unknown codes pass through to the document unchanged.
	Priority string `json:"priority,omitempty"`

	// Category is the actor category code ("official", "media",
	// "platform", "user"). Unknown codes pass through unchanged.
	Category string `json:"category,omitempty"`

	// Action is the action description.
	Action string `json:"action"`

	// Timeline is the optional deadline or window for the action.
	Timeline string `json:"timeline,omitempty"`

	// Responsible optionally names the responsible party.
	Responsible string `json:"responsible,omitempty"`
}
