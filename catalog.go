package spdx

import (
	"strings"
	"sync"

	"github.com/github/go-spdx/v2/spdxexp/spdxlicenses"
)

// Strictness is the policy the Validator enforces on LicenseId and
// WithException.ExceptionID identifiers.
type Strictness int

const (
	// AllowAny accepts any identifier, known or not.
	AllowAny Strictness = iota
	// AllowDeprecated accepts known current and known deprecated identifiers,
	// rejecting only identifiers absent from the catalog entirely.
	AllowDeprecated
	// AllowCurrent accepts only non-deprecated catalog identifiers.
	AllowCurrent
)

func (s Strictness) String() string {
	switch s {
	case AllowAny:
		return "AllowAny"
	case AllowDeprecated:
		return "AllowDeprecated"
	case AllowCurrent:
		return "AllowCurrent"
	default:
		return "Strictness(?)"
	}
}

// License is a catalog entry for an SPDX license identifier.
type License struct {
	ID          string
	Deprecated  bool
	SuccessorID string // empty when there is no known successor
}

// Exception is a catalog entry for an SPDX license exception identifier.
type Exception struct {
	ID          string
	Deprecated  bool
	SuccessorID string
}

// Catalog is a read-only, injectable table of known SPDX license and
// exception identifiers, their deprecation status, and deprecated→current
// successor mappings. The zero Catalog is not usable; construct one with
// NewCatalog or use DefaultCatalog.
type Catalog struct {
	licenses   map[string]License   // lowercase id -> entry
	exceptions map[string]Exception // lowercase id -> entry
}

// noSuccessorLicenses maps the lowercase bare-form of a deprecated
// license id with NO known successor to true, so the generic "-only"/
// "-or-later" rewrite in Normalize is suppressed for them and they pass
// through verbatim (case-corrected only). This table, and the combined
// mapping below, are the "full mapping table" the catalog is required to
// encode explicitly per spec §3 — spdxlicenses only reports deprecation,
// not successors.
var noSuccessorLicenses = map[string]bool{
	"ecos-2.0":             true,
	"nunit":                true,
	"standardml-nj":        true,
	"wxwindows":            true,
	"xfree86-1.1":          true,
	"bsd-2-clause-freebsd": true,
	"bsd-2-clause-netbsd":  true,
}

// deprecatedCombined maps a lowercase deprecated combined license+exception
// identifier (e.g. "gpl-2.0-with-classpath-exception") to the current
// license id and exception id it expands to.
type combinedSuccessor struct {
	licenseID   string
	exceptionID string
}

var deprecatedCombined = map[string]combinedSuccessor{
	"gpl-2.0-with-classpath-exception": {"GPL-2.0-only", "Classpath-exception-2.0"},
	"gpl-2.0-with-gcc-exception":       {"GPL-2.0-only", "GCC-exception-2.0"},
	"gpl-2.0-with-bison-exception":     {"GPL-2.0-only", "Bison-exception-2.2"},
	"gpl-2.0-with-font-exception":      {"GPL-2.0-only", "Font-exception-2.0"},
	"gpl-3.0-with-gcc-exception":       {"GPL-3.0-only", "GCC-exception-3.1"},
	"gpl-3.0-with-autoconf-exception":  {"GPL-3.0-only", "Autoconf-exception-3.0"},
}

// deprecatedExceptionSuccessors maps a handful of exception identifiers
// that SPDX has renamed to their current spelling. The teacher's catalog
// does not track exception deprecation at all (spdxlicenses.GetExceptions
// only returns the current list); this table supplements it per spec §4.5
// point 4 ("deprecated exception ids attached via WITH are replaced").
// Keys are the canonical deprecated ids; NewCatalog adds every entry to
// the catalog whether or not spdxlicenses lists it.
var deprecatedExceptionSuccessors = map[string]string{
	"Nokia-Qt-exception-1.1": "Qt-GPL-exception-1.0",
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog returns the process-wide catalog backed by the embedded
// SPDX license/exception data in github.com/github/go-spdx/v2. It is
// built once and is safe to share across goroutines, since it is never
// mutated after construction.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// NewCatalog builds a fresh Catalog from the embedded SPDX license list
// data. Most callers should use DefaultCatalog; NewCatalog exists so
// tests can construct independent instances.
func NewCatalog() *Catalog {
	current := spdxlicenses.GetLicenses()
	deprecated := spdxlicenses.GetDeprecated()
	exceptions := spdxlicenses.GetExceptions()

	c := &Catalog{
		licenses:   make(map[string]License, len(current)+len(deprecated)),
		exceptions: make(map[string]Exception, len(exceptions)),
	}

	for _, id := range current {
		c.licenses[strings.ToLower(id)] = License{ID: id}
	}
	for _, id := range deprecated {
		lower := strings.ToLower(id)
		c.licenses[lower] = License{
			ID:          id,
			Deprecated:  true,
			SuccessorID: successorForDeprecatedLicense(id),
		}
	}
	for _, id := range exceptions {
		c.exceptions[strings.ToLower(id)] = Exception{ID: id}
	}
	for id, successor := range deprecatedExceptionSuccessors {
		c.exceptions[strings.ToLower(id)] = Exception{ID: id, Deprecated: true, SuccessorID: successor}
	}
	return c
}

// successorForDeprecatedLicense applies spec §4.5's generic rewrite rule
// (bare "X-N.M" -> "X-N.M-only", "X-N.M+" -> "X-N.M-or-later") to a
// deprecated id that has no entry in noSuccessorLicenses or
// deprecatedCombined. Ids handled by those two tables return "" here;
// Normalize consults deprecatedCombined directly via CombinedSuccessor.
func successorForDeprecatedLicense(id string) string {
	lower := strings.ToLower(id)
	if noSuccessorLicenses[lower] {
		return ""
	}
	if _, ok := deprecatedCombined[lower]; ok {
		return ""
	}
	if strings.HasSuffix(id, "+") {
		return strings.TrimSuffix(id, "+") + "-or-later"
	}
	return id + "-only"
}

// License looks up a license identifier case-insensitively. ok is false
// when the id is not in the catalog at all.
func (c *Catalog) License(id string) (lic License, ok bool) {
	lic, ok = c.licenses[strings.ToLower(id)]
	return lic, ok
}

// Exception looks up an exception identifier case-insensitively.
func (c *Catalog) Exception(id string) (exc Exception, ok bool) {
	exc, ok = c.exceptions[strings.ToLower(id)]
	return exc, ok
}

// CombinedSuccessor reports the license+exception pair a deprecated
// combined identifier (e.g. "GPL-2.0-with-classpath-exception") expands
// to, if id is recognized as one.
func (c *Catalog) CombinedSuccessor(id string) (licenseID, exceptionID string, ok bool) {
	cs, ok := deprecatedCombined[strings.ToLower(id)]
	if !ok {
		return "", "", false
	}
	return cs.licenseID, cs.exceptionID, true
}
