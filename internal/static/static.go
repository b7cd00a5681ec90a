package static

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// DefaultDirName is the directory looked up next to the executable when no
// static directory is configured.
const DefaultDirName = "static"

// IndexFile is the page served on the root route.
const IndexFile = "index.html"

// ErrNotFound is returned by Open for missing files, directories and paths
// that leave the static root.
var ErrNotFound = errors.New("static: file not found")

// Dir is a read-only static directory. The root is fixed once created.
type Dir struct {
	root string
}

// Resolve returns the static directory rooted at dir. An empty dir resolves
// to DefaultDirName beside the running executable. The directory does not
// have to exist yet.
func Resolve(dir string) (*Dir, error) {
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}

		// Follow symlinks so the lookup is relative to the real binary
		exe, err = filepath.EvalSymlinks(exe)
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(filepath.Dir(exe), DefaultDirName)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	return &Dir{root: filepath.Clean(abs)}, nil
}

// Root returns the absolute path of the directory.
func (d *Dir) Root() string {
	return d.root
}

// Exists reports whether the root is an existing directory.
func (d *Dir) Exists() bool {
	fi, err := os.Stat(d.root)
	return err == nil && fi.IsDir()
}

// Open opens the regular file at the slash-separated name relative to the
// root. Directories and anything outside the root yield ErrNotFound.
func (d *Dir) Open(name string) (*os.File, fs.FileInfo, error) {
	// Backslashes and NUL bytes never name a file under the root
	if strings.ContainsAny(name, "\\\x00") {
		return nil, nil, ErrNotFound
	}

	// http.Dir cleans ".." against "/"
	f, err := http.Dir(d.root).Open(path.Clean("/" + name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	file, ok := f.(*os.File)
	if !ok {
		f.Close()
		return nil, nil, ErrNotFound
	}

	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	if !fi.Mode().IsRegular() {
		file.Close()
		return nil, nil, ErrNotFound
	}

	return file, fi, nil
}

// Index reports the path of the index file and whether it currently exists
// as a regular file. It is checked on every call.
func (d *Dir) Index() (string, bool) {
	p := filepath.Join(d.root, IndexFile)
	fi, err := os.Stat(p)
	if err != nil {
		return p, false
	}
	return p, fi.Mode().IsRegular()
}

// Handler serves the file named by the "filepath" route parameter. Missing
// files are passed to notFound; any other failure goes to serverError.
func (d *Dir) Handler(notFound http.HandlerFunc, serverError func(http.ResponseWriter, *http.Request, error)) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		f, fi, err := d.Open(ps.ByName("filepath"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				notFound(w, r)
			default:
				serverError(w, r, err)
			}
			return
		}
		defer f.Close()

		// ServeContent picks the content type from the extension, sniffing
		// the first bytes when the extension is unknown
		http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
	}
}
