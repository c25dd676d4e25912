package topics

// Topic categories used for admin grouping.
const (
	CategoryGoals      = "goals"
	CategoryMeasures   = "measures"
	CategoryActions    = "actions"
	CategoryIssues     = "issues"
	CategoryCoaching   = "coaching"
	CategoryOnboarding = "onboarding"
	CategoryInsights   = "insights"
)

var singleShotSlots = []Slot{SlotSystem, SlotUser}

var coachingSlots = []Slot{SlotSystem, SlotInitiation, SlotResume, SlotExtraction}

// catalog returns the full desired-state table. Every topic the product can
// invoke has exactly one entry here; the reconciler materializes records
// from it and deactivates anything it no longer lists.
func catalog() []*TopicDefinition {
	return []*TopicDefinition{
		{
			TopicID:      "goal_creation",
			Name:         "Goal Creation",
			Category:     CategoryGoals,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 10,
			Params: []ParameterRef{
				{Name: "goal_description", Source: SourceRequest},
				{Name: "timeframe", Source: SourceRequest, Required: boolPtr(false)},
				{Name: "company_name", Source: SourceOnboarding, Path: "company.name"},
				{Name: "company_vision", Source: SourceOnboarding, Path: "foundation.vision"},
				{Name: "existing_goals", Source: SourceGoals, Required: boolPtr(false)},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.7, MaxTokens: 1200, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedGoalCreationSystem,
					SlotUser:   seedGoalCreationUser,
				},
			},
		},
		{
			TopicID:      "goal_review",
			Name:         "Goal Review",
			Category:     CategoryGoals,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 20,
			Params: []ParameterRef{
				{Name: "goal", Source: SourceGoal},
				{Name: "measures", Source: SourceMeasures, Required: boolPtr(false)},
				{Name: "company_name", Source: SourceOnboarding, Path: "company.name"},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.5, MaxTokens: 1000, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedGoalReviewSystem,
					SlotUser:   seedGoalReviewUser,
				},
			},
		},
		{
			TopicID:      "goal_alignment_analysis",
			Name:         "Goal Alignment Analysis",
			Category:     CategoryInsights,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierPremium,
			Active:       true,
			DisplayOrder: 30,
			Params: []ParameterRef{
				{Name: "goal", Source: SourceGoal},
				{Name: "all_goals", Source: SourceGoals},
				{Name: "company_vision", Source: SourceOnboarding, Path: "foundation.vision"},
				{Name: "alignment_score", Source: SourceComputed},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.3, MaxTokens: 1500, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedGoalAlignmentSystem,
					SlotUser:   seedGoalAlignmentUser,
				},
			},
		},
		{
			TopicID:      "measure_suggestion",
			Name:         "Measure Suggestion",
			Category:     CategoryMeasures,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 40,
			Params: []ParameterRef{
				{Name: "goal", Source: SourceGoal},
				{Name: "existing_measures", Source: SourceMeasures, Required: boolPtr(false)},
				{Name: "industry", Source: SourceOnboarding, Path: "company.industry"},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.7, MaxTokens: 1200, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedMeasureSuggestionSystem,
					SlotUser:   seedMeasureSuggestionUser,
				},
			},
		},
		{
			TopicID:      "measure_review",
			Name:         "Measure Review",
			Category:     CategoryMeasures,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 50,
			Params: []ParameterRef{
				{Name: "measure", Source: SourceMeasure},
				{Name: "goal", Source: SourceGoal, Required: boolPtr(false)},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.4, MaxTokens: 900, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedMeasureReviewSystem,
					SlotUser:   seedMeasureReviewUser,
				},
			},
		},
		{
			TopicID:      "action_planning",
			Name:         "Action Planning",
			Category:     CategoryActions,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 60,
			Params: []ParameterRef{
				{Name: "goal", Source: SourceGoal},
				{Name: "action_context", Source: SourceRequest, Path: "context", Required: boolPtr(false)},
				{Name: "team_size", Source: SourceOnboarding, Path: "company.team_size"},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.6, MaxTokens: 1400, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedActionPlanningSystem,
					SlotUser:   seedActionPlanningUser,
				},
			},
		},
		{
			TopicID:      "action_prioritization",
			Name:         "Action Prioritization",
			Category:     CategoryActions,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierPremium,
			Active:       true,
			DisplayOrder: 70,
			Params: []ParameterRef{
				{Name: "action", Source: SourceAction},
				{Name: "all_goals", Source: SourceGoals},
				{Name: "capacity_hours", Source: SourceRequest, Path: "capacity_hours", Required: boolPtr(false)},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.3, MaxTokens: 1100, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedActionPrioritizationSystem,
					SlotUser:   seedActionPrioritizationUser,
				},
			},
		},
		{
			TopicID:      "issue_diagnosis",
			Name:         "Issue Diagnosis",
			Category:     CategoryIssues,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 80,
			Params: []ParameterRef{
				{Name: "issue", Source: SourceIssue},
				{Name: "related_goal", Source: SourceGoal, Required: boolPtr(false)},
				{Name: "company_name", Source: SourceOnboarding, Path: "company.name"},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.5, MaxTokens: 1300, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedIssueDiagnosisSystem,
					SlotUser:   seedIssueDiagnosisUser,
				},
			},
		},
		{
			TopicID:      "website_insight",
			Name:         "Website Insight",
			Category:     CategoryInsights,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 90,
			Params: []ParameterRef{
				{Name: "scan_result", Source: SourceWebsite, Required: boolPtr(true)},
				{Name: "company_name", Source: SourceOnboarding, Path: "company.name"},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.6, MaxTokens: 1200, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedWebsiteInsightSystem,
					SlotUser:   seedWebsiteInsightUser,
				},
			},
		},
		{
			TopicID:      "onboarding_interview",
			Name:         "Onboarding Interview",
			Category:     CategoryOnboarding,
			TopicType:    TopicTypeConversationCoaching,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 100,
			Params: []ParameterRef{
				{Name: "user_profile", Source: SourceUser},
				{Name: "conversation_summary", Source: SourceConversation, Required: boolPtr(false)},
			},
			Slots: coachingSlots,
			Seed: SeedDefaults{
				Temperature: 0.8, MaxTokens: 800, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem:     seedOnboardingInterviewSystem,
					SlotInitiation: seedOnboardingInterviewInitiation,
					SlotResume:     seedOnboardingInterviewResume,
					SlotExtraction: seedOnboardingInterviewExtraction,
				},
			},
		},
		{
			TopicID:      "weekly_review_coaching",
			Name:         "Weekly Review Coaching",
			Category:     CategoryCoaching,
			TopicType:    TopicTypeConversationCoaching,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 110,
			Params: []ParameterRef{
				{Name: "user_profile", Source: SourceUser},
				{Name: "all_goals", Source: SourceGoals},
				{Name: "all_measures", Source: SourceMeasures, Required: boolPtr(false)},
				{Name: "conversation_summary", Source: SourceConversation, Required: boolPtr(false)},
			},
			Slots: coachingSlots,
			Seed: SeedDefaults{
				Temperature: 0.7, MaxTokens: 900, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem:     seedWeeklyReviewSystem,
					SlotInitiation: seedWeeklyReviewInitiation,
					SlotResume:     seedWeeklyReviewResume,
					SlotExtraction: seedWeeklyReviewExtraction,
				},
			},
		},
		{
			TopicID:      "quarterly_planning_coaching",
			Name:         "Quarterly Planning Coaching",
			Category:     CategoryCoaching,
			TopicType:    TopicTypeConversationCoaching,
			TierLevel:    TierPremium,
			Active:       true,
			DisplayOrder: 120,
			Params: []ParameterRef{
				{Name: "user_profile", Source: SourceUser},
				{Name: "all_goals", Source: SourceGoals},
				{Name: "company_vision", Source: SourceOnboarding, Path: "foundation.vision"},
				{Name: "scan_result", Source: SourceWebsite},
				{Name: "conversation_summary", Source: SourceConversation, Required: boolPtr(false)},
			},
			Slots: coachingSlots,
			Seed: SeedDefaults{
				Temperature: 0.7, MaxTokens: 1000, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem:     seedQuarterlyPlanningSystem,
					SlotInitiation: seedQuarterlyPlanningInitiation,
					SlotResume:     seedQuarterlyPlanningResume,
					SlotExtraction: seedQuarterlyPlanningExtraction,
				},
			},
		},
		{
			TopicID:      "daily_checkin_coaching",
			Name:         "Daily Check-in Coaching",
			Category:     CategoryCoaching,
			TopicType:    TopicTypeConversationCoaching,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 130,
			Params: []ParameterRef{
				{Name: "user_profile", Source: SourceUser},
				{Name: "focus_area", Source: SourceRequest, Path: "focus_area", Required: boolPtr(false)},
				{Name: "conversation_summary", Source: SourceConversation, Required: boolPtr(false)},
			},
			Slots: coachingSlots,
			Seed: SeedDefaults{
				Temperature: 0.8, MaxTokens: 600, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem:     seedDailyCheckinSystem,
					SlotInitiation: seedDailyCheckinInitiation,
					SlotResume:     seedDailyCheckinResume,
					SlotExtraction: seedDailyCheckinExtraction,
				},
			},
		},
		{
			TopicID:      "business_foundation_summary",
			Name:         "Business Foundation Summary",
			Category:     CategoryOnboarding,
			TopicType:    TopicTypeSingleShot,
			TierLevel:    TierBasic,
			Active:       true,
			DisplayOrder: 140,
			Params: []ParameterRef{
				{Name: "foundation", Source: SourceOnboarding, Path: "foundation", Required: boolPtr(true)},
				{Name: "scan_result", Source: SourceWebsite},
			},
			Slots: singleShotSlots,
			Seed: SeedDefaults{
				Temperature: 0.4, MaxTokens: 1000, TopP: 1.0,
				Bodies: map[Slot]string{
					SlotSystem: seedFoundationSummarySystem,
					SlotUser:   seedFoundationSummaryUser,
				},
			},
		},
	}
}
