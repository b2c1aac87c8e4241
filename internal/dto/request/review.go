package request

type CreateReviewForm struct {
	Rating  int `validate:"required,min=1,max=5"`
	Comment string
}
