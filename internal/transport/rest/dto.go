package rest

import (
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

type summaryResponse struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Status   string  `json:"status"`
}

type mealSummaryResponse struct {
	MealID     string  `json:"meal_id"`
	MealType   string  `json:"meal_type"`
	MealTime   string  `json:"meal_time"`
	Calories   int     `json:"calories"`
	Protein    float64 `json:"protein"`
	Fat        float64 `json:"fat"`
	Carbs      float64 `json:"carbs"`
	ItemsCount int     `json:"items_count"`
}

type mealItemResponse struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Grams    int     `json:"grams"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	AddedVia *string `json:"added_via,omitempty"`
}

type insightResponse struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

type nutritionPayload struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

type settingsPayload struct {
	CalorieTarget    int    `json:"calorie_target"`
	CalorieTolerance int    `json:"calorie_tolerance"`
	MacroMode        string `json:"macro_mode"`
	ProteinTarget    int    `json:"protein_target"`
	FatTarget        int    `json:"fat_target"`
	CarbsTarget      int    `json:"carbs_target"`
}

type statusResponse struct {
	Status string `json:"status"`
}

var okStatus = statusResponse{Status: "ok"}

func toMealSummaryResponse(m domain.MealSummary) mealSummaryResponse {
	return mealSummaryResponse{
		MealID:     m.MealID.String(),
		MealType:   m.MealType.String(),
		MealTime:   m.MealTime,
		Calories:   m.Calories,
		Protein:    m.Protein,
		Fat:        m.Fat,
		Carbs:      m.Carbs,
		ItemsCount: m.ItemsCount,
	}
}

func toMealItemResponse(item domain.MealItem) mealItemResponse {
	return mealItemResponse{
		ItemID:   item.ItemID.String(),
		Name:     item.Name,
		Grams:    item.Grams,
		Calories: item.Calories,
		Protein:  item.Protein,
		Fat:      item.Fat,
		Carbs:    item.Carbs,
		AddedVia: item.AddedVia,
	}
}

func toSettingsPayload(s domain.Settings) settingsPayload {
	return settingsPayload{
		CalorieTarget:    s.CalorieTarget,
		CalorieTolerance: s.CalorieTolerance,
		MacroMode:        s.MacroMode.String(),
		ProteinTarget:    s.ProteinTarget,
		FatTarget:        s.FatTarget,
		CarbsTarget:      s.CarbsTarget,
	}
}
