// Package validation holds input validators applied before any backend call.
//
// ValidateBucketName checks a candidate bucket name against the S3 naming
// rules. Rules are evaluated in a fixed order and the first violation is
// reported, so a name breaking several rules always yields the same message.
//
//	if err := validation.ValidateBucketName(name); err != nil {
//	    return err // apperr.KindValidation
//	}
//
// Each rule has a sentinel error, usable with errors.Is.
package validation
