package model

// MealTypes in serving order.
var MealTypes = []string{"breakfast", "lunch", "snacks", "dinner"}

// Meal is one mess schedule entry for a branch.
type Meal struct {
	Meta
	Type         string `json:"type" validate:"required,oneof=breakfast lunch snacks dinner"`
	Menu         string `json:"menu" validate:"required"`
	DispatchTime string `json:"dispatch_time" validate:"required"`
	Branch       string `json:"branch" validate:"required"`
}

// FoodFeedback is a student's rating of the mess food.
type FoodFeedback struct {
	Meta
	Branch       string `json:"branch" validate:"required"`
	Floor        string `json:"floor"`
	StudentName  string `json:"student_name" validate:"required"`
	FeedbackType string `json:"feedback_type" validate:"omitempty,oneof=suggestion complaint appreciation"`
	Details      string `json:"details" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
}
