package assembler

// Fields is the order in which descriptor variables are written. Variables
// the descriptor does not define are skipped.
var Fields = []string{
	"pkgname",
	"pkgver",
	"pkgrel",
	"epoch",
	"pkgdesc",
	"url",
	"arch",
	"license",
	"groups",
	"depends",
	"makedepends",
	"checkdepends",
	"optdepends",
	"provides",
	"conflicts",
	"replaces",
	"backup",
	"options",
	"install",
	"changelog",
	"_archive",
	"source",
	"noextract",
	"validpgpkeys",
	"md5sums",
	"sha1sums",
	"sha224sums",
	"sha256sums",
	"sha384sums",
	"sha512sums",
	"b2sums",
}

// Lifecycle function names.
const (
	FuncPrepare = "prepare"
	FuncBuild   = "build"
	FuncPackage = "package"
)
