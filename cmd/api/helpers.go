package main

import (
	"encoding/json"
	"net/http"
)

// Define an envelope type
type envelope map[string]any

// Sends a JSON response with optional headers and a status code
func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	//Encode the data to JSON with indentation
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	//Append newline for readability in terminal
	js = append(js, '\n')

	//Add any additional header if provided
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// writeHTML sends a fixed HTML document with the given status
func (app *application) writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
