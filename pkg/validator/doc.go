// Package validator builds declarative validation from small Rule values.
//
// A Rule pairs a Check func with translation-friendly error metadata.
// Apply collects every failure; ApplyFirst keeps only the first failure of
// each field, which is what form UIs show next to an input:
//
//	err := validator.ApplyFirst(
//		validator.RequiredString("email", email),
//		validator.MaxLenString("email", email, 120),
//		validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		first, _ := verrs.First("email")
//		_ = first.TranslationKey
//	}
//
// Rules are stateless and safe for concurrent use. WithKey and WithMessage
// let callers replace the generic validation.* keys with domain ones.
package validator
