package spdx

// Normalize returns a semantically equivalent tree in which every
// LicenseId has canonical SPDX casing, deprecated identifiers with a
// known successor are replaced by that successor, deprecated combined
// "<license>-with-<exception>" identifiers become WithException nodes,
// and deprecated exception ids attached via WITH are replaced together
// with an upgrade of their attached license (spec §4.5). Normalize never
// fails: identifiers unknown to the catalog are passed through verbatim.
func Normalize(expr Expr) Expr {
	return NormalizeWithCatalog(expr, DefaultCatalog())
}

// NormalizeWithCatalog is Normalize with an explicit, injectable catalog.
func NormalizeWithCatalog(expr Expr, catalog *Catalog) Expr {
	switch t := expr.(type) {
	case *LicenseId:
		return normalizeLicenseID(t, catalog)
	case *LicenseRef:
		return &LicenseRef{ID: t.ID}
	case *WithException:
		return normalizeWithException(t, catalog)
	case *Compound:
		return &Compound{
			Left:  NormalizeWithCatalog(t.Left, catalog),
			Op:    t.Op,
			Right: NormalizeWithCatalog(t.Right, catalog),
		}
	default:
		return expr
	}
}

func normalizeLicenseID(lic *LicenseId, catalog *Catalog) Expr {
	// Deprecated combined id: "<license>-with-<exception>" -> WithException.
	if licenseID, exceptionID, ok := catalog.CombinedSuccessor(lic.ID); ok {
		return &WithException{
			License:     &LicenseId{ID: licenseID},
			ExceptionID: exceptionID,
		}
	}

	entry, known := catalog.License(lic.ID)
	if !known {
		// Unknown to the catalog: pass through verbatim, per spec.
		return &LicenseId{ID: lic.ID, OrLater: lic.OrLater}
	}

	if !entry.Deprecated || entry.SuccessorID == "" {
		// Current, or deprecated with no known successor: case-correct only.
		return &LicenseId{ID: entry.ID, OrLater: lic.OrLater}
	}

	// Deprecated with a known generic successor. entry.SuccessorID is the
	// bare "-only" form; the "+"-suffixed variant upgrades to "-or-later"
	// instead, clearing OrLater since the suffix now carries the meaning.
	if lic.OrLater {
		return &LicenseId{ID: entry.ID + "-or-later", OrLater: false}
	}
	return &LicenseId{ID: entry.SuccessorID, OrLater: false}
}

func normalizeWithException(w *WithException, catalog *Catalog) Expr {
	licExpr := normalizeLicenseID(w.License, catalog)

	lic, ok := licExpr.(*LicenseId)
	if !ok {
		// w.License's id was itself a deprecated combined identifier; keep
		// its license half and let the explicit exception below stand.
		if we, ok := licExpr.(*WithException); ok {
			lic = we.License
		} else {
			lic = w.License
		}
	}

	exceptionID := w.ExceptionID
	if exc, known := catalog.Exception(w.ExceptionID); known {
		exceptionID = exc.ID
		if exc.Deprecated && exc.SuccessorID != "" {
			exceptionID = exc.SuccessorID
		}
	}

	return &WithException{License: lic, ExceptionID: exceptionID}
}
