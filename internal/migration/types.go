package migration

import (
	"strings"
	"time"

	"github.com/example/laramig/internal/codegen"
)

// Framework symbols every migration imports.
var migrationImports = []string{
	`Illuminate\Support\Facades\Schema`,
	`Illuminate\Database\Schema\Blueprint`,
	`Illuminate\Database\Migrations\Migration`,
}

// Options configure a Builder. Zero values fall back to the defaults below.
type Options struct {
	Naming    NamingMode       // class name casing, default NamingFirst
	Extension string           // file extension without dot, default "php"
	Indent    string           // one indentation level, default tab
	Types     TypeMap          // column type table, default DefaultTypeMap()
	Now       func() time.Time // generation clock, default time.Now
}

// Default option values
const (
	DefaultExtension = "php"
	DefaultIndent    = "\t"
)

func (o Options) withDefaults() Options {
	if o.Naming == "" {
		o.Naming = NamingFirst
	}
	o.Extension = strings.TrimLeft(o.Extension, ".")
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if o.Types == nil {
		o.Types = DefaultTypeMap()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// GeneratedFile is one rendered migration.
type GeneratedFile struct {
	Table     string // source table name
	ClassName string // e.g. "CreateUsersTable"
	FileName  string // e.g. "2024_01_02_030405_create_users_table.php"
	Path      string // FileName joined to the migrations folder, empty for previews
	Content   string // rendered source
}

// writerFor returns a fresh writer for one class.
func (o Options) writerFor() *codegen.LineWriter {
	return codegen.NewLineWriter(o.Indent)
}
