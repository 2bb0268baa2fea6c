package spdx

// Validate walks expr's LicenseId and WithException.ExceptionID leaves
// against catalog under strictness, per spec §4.4:
//
//	Strictness      Unknown id   Deprecated id  Current id  LicenseRef-*
//	AllowAny        accept       accept         accept      accept
//	AllowDeprecated reject       accept         accept      accept
//	AllowCurrent    reject       reject         accept      accept
//
// It returns the first *ValidationError encountered (spec §1: "does not
// emit diagnostics beyond a single fail-point"), or nil if expr is valid.
func Validate(expr Expr, strictness Strictness, catalog *Catalog) error {
	switch t := expr.(type) {
	case *LicenseId:
		return validateLicenseID(t.ID, strictness, catalog)
	case *LicenseRef:
		return nil
	case *WithException:
		if err := validateLicenseID(t.License.ID, strictness, catalog); err != nil {
			return err
		}
		return validateExceptionID(t.ExceptionID, strictness, catalog)
	case *Compound:
		if err := Validate(t.Left, strictness, catalog); err != nil {
			return err
		}
		return Validate(t.Right, strictness, catalog)
	default:
		return nil
	}
}

func validateLicenseID(id string, strictness Strictness, catalog *Catalog) error {
	lic, known := catalog.License(id)
	if !known {
		if strictness == AllowAny {
			return nil
		}
		return &ValidationError{ID: id, Reason: "unknown license identifier", Policy: strictness}
	}
	if lic.Deprecated && strictness == AllowCurrent {
		return &ValidationError{ID: id, Reason: "deprecated license identifier", Policy: strictness}
	}
	return nil
}

func validateExceptionID(id string, strictness Strictness, catalog *Catalog) error {
	exc, known := catalog.Exception(id)
	if !known {
		if strictness == AllowAny {
			return nil
		}
		return &ValidationError{ID: id, Reason: "unknown exception identifier", Policy: strictness}
	}
	if exc.Deprecated && strictness == AllowCurrent {
		return &ValidationError{ID: id, Reason: "deprecated exception identifier", Policy: strictness}
	}
	return nil
}
