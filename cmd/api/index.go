package main

import (
	"io"
	"net/http"
	"os"
	"strconv"
)

// fallbackIndexHTML is returned on the root route when index.html is missing
const fallbackIndexHTML = "<html><body><h1>Index not found</h1></body></html>"

// indexHandler serves index.html from the static directory, or the fallback
// page when the file does not exist. Both answers are always a full 200
// text/html body; range and conditional headers are ignored
func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	path, ok := app.static.Index()
	if !ok {
		app.writeHTML(w, http.StatusOK, fallbackIndexHTML)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		//The file vanished or became unreadable between the check and the open
		app.logError(r, err)
		app.writeHTML(w, http.StatusOK, fallbackIndexHTML)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		app.logError(r, err)
		app.writeHTML(w, http.StatusOK, fallbackIndexHTML)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.FormatInt(fi.Size(), 10))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := io.Copy(w, f); err != nil {
		//Headers are already sent; all that is left is to log
		app.logError(r, err)
	}
}
