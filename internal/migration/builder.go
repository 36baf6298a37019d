package migration

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/example/laramig/internal/codegen"
	"github.com/example/laramig/internal/models"
	"github.com/example/laramig/internal/ports/secondary"
)

// Builder turns table schemas into migration classes and hands the rendered
// source to a FileManager.
type Builder struct {
	files    secondary.FileManager
	renderer *codegen.Renderer
	opts     Options
}

// NewBuilder creates a new Builder. files may be nil when only Preview is used.
func NewBuilder(files secondary.FileManager, opts Options) *Builder {
	return &Builder{
		files:    files,
		renderer: codegen.NewRenderer(),
		opts:     opts.withDefaults(),
	}
}

// Options returns the effective options.
func (b *Builder) Options() Options {
	return b.opts
}

// BuildClass assembles the migration class for t.
func (b *Builder) BuildClass(t models.Table) (*codegen.Class, error) {
	class, err := codegen.NewClass(ClassName(t.Name, b.opts.Naming))
	if err != nil {
		return nil, err
	}
	for _, symbol := range migrationImports {
		class.AddImport(symbol)
	}
	class.AddExtend("Migration")

	up := codegen.NewMethod("up", codegen.ScopePublic, "Run the migrations.")
	up.AddReturn(codegen.Return{Type: "void"})
	up.SetBody(&upBody{table: t, types: b.opts.Types})
	class.AddMethod(up)

	down := codegen.NewMethod("down", codegen.ScopePublic, "Reverse the migrations.")
	down.AddReturn(codegen.Return{Type: "void"})
	down.SetBody(&downBody{table: t.Name})
	class.AddMethod(down)

	return class, nil
}

// Preview renders the migration for elem without writing it. It returns
// nil for elements that are not entity views.
func (b *Builder) Preview(elem models.Element) (*GeneratedFile, error) {
	if !elem.IsEntityView() {
		return nil, nil
	}

	t := *elem.Table
	class, err := b.BuildClass(t)
	if err != nil {
		return nil, fmt.Errorf("failed to build class for table %q: %w", t.Name, err)
	}

	w := b.opts.writerFor()
	b.renderer.Render(class, w)

	return &GeneratedFile{
		Table:     t.Name,
		ClassName: class.Name(),
		FileName:  FileName(t.Name, b.opts.Now(), b.opts.Extension),
		Content:   w.String(),
	}, nil
}

// Generate renders the migration for elem and writes it through the
// FileManager. Elements that are not entity views are a no-op and return
// a nil file and nil error.
func (b *Builder) Generate(ctx context.Context, elem models.Element) (*GeneratedFile, error) {
	file, err := b.Preview(elem)
	if err != nil || file == nil {
		return nil, err
	}
	if b.files == nil {
		return nil, fmt.Errorf("no file manager configured")
	}

	if err := b.files.WriteFile(ctx, file.FileName, []byte(file.Content)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", file.FileName, err)
	}
	file.Path = filepath.Join(b.files.MigrationsPath(), file.FileName)

	return file, nil
}

// upBody writes Schema::create with one builder call per mapped column.
type upBody struct {
	table models.Table
	types TypeMap
}

func (u *upBody) Render(w codegen.Writer) {
	w.Indent()
	w.WriteLine("Schema::create('" + u.table.Name + "', function (Blueprint $table) {")

	w.Indent()
	for _, col := range u.table.Columns {
		if line, ok := u.columnLine(col); ok {
			w.WriteLine(line)
		}
	}
	w.Outdent()

	w.WriteLine("});")
	w.Outdent()
}

// columnLine returns "$table-><call>('<name>'[, <length>]);". Columns whose
// type has no builder call are skipped.
func (u *upBody) columnLine(col models.Column) (string, bool) {
	call, ok := u.types.Lookup(col.Type)
	if !ok {
		return "", false
	}

	args := "'" + col.Name + "'"
	if call == StringCall && col.Length > 0 {
		args += ", " + strconv.Itoa(col.Length)
	}
	return "$table->" + call + "(" + args + ");", true
}

// downBody writes Schema::dropIfExists.
type downBody struct {
	table string
}

func (d *downBody) Render(w codegen.Writer) {
	w.Indent()
	w.WriteLine("Schema::dropIfExists('" + d.table + "');")
	w.Outdent()
}
