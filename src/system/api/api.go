package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/bearycool11/pmll"
	"github.com/voodooEntity/archivist"
	"github.com/voodooEntity/gitsapi"
)

type RecordRequest struct {
	Input string
}

type RecordResponse struct {
	Response string
	History  []string
}

type HistoryResponse struct {
	History []string
}

type FingerprintRequest struct {
	Data string
}

type FingerprintResponse struct {
	Fingerprint string
}

type VerifyRequest struct {
	Data      string
	Signature string
}

type VerifyResponse struct {
	Valid bool
}

// Extend registers the pmll specific endpoints on top of the gitsapi
// http surface. the api is a dispatcher into the core - the core itself
// stays free of any network knowledge.
func Extend(brain *pmll.Pmll) {

	archivist.Info("> Extending gits-HTTP API")

	// Route: /v1/record
	gitsapi.ServeMux.HandleFunc("/v1/record", func(w http.ResponseWriter, r *http.Request) {
		if "OPTIONS" == r.Method {
			respond("", 200, w)
			return
		}

		// check http method
		if "POST" != r.Method {
			http.Error(w, "Invalid http method for this path", 422)
			return
		}

		// retrieve data from request
		body, err := getRequestBody(r)
		if nil != err {
			archivist.Error("Could not read http request body", err.Error())
			http.Error(w, "Malformed or no body. ", 422)
			return
		}

		// unpack the json
		var recordData RecordRequest
		if err := json.Unmarshal(body, &recordData); err != nil {
			archivist.Error("Invalid json request object", err.Error())
			http.Error(w, "Invalid json request object "+err.Error(), 422)
			return
		}

		// lets pass the input to the brain which appends it to the
		// context log and derives the response
		response, err := brain.Record(recordData.Input)
		if nil != err {
			http.Error(w, err.Error(), 422)
			return
		}

		respondOk(RecordResponse{
			Response: response,
			History:  brain.History(),
		}, w)
	})

	// Route: /v1/history
	gitsapi.ServeMux.HandleFunc("/v1/history", func(w http.ResponseWriter, r *http.Request) {
		if "OPTIONS" == r.Method {
			respond("", 200, w)
			return
		}

		if "GET" != r.Method {
			http.Error(w, "Invalid http method for this path", 422)
			return
		}

		respondOk(HistoryResponse{
			History: brain.History(),
		}, w)
	})

	// Route: /v1/fingerprint
	gitsapi.ServeMux.HandleFunc("/v1/fingerprint", func(w http.ResponseWriter, r *http.Request) {
		if "OPTIONS" == r.Method {
			respond("", 200, w)
			return
		}

		if "POST" != r.Method {
			http.Error(w, "Invalid http method for this path", 422)
			return
		}

		body, err := getRequestBody(r)
		if nil != err {
			archivist.Error("Could not read http request body", err.Error())
			http.Error(w, "Malformed or no body. ", 422)
			return
		}

		var fingerprintData FingerprintRequest
		if err := json.Unmarshal(body, &fingerprintData); err != nil {
			archivist.Error("Invalid json request object", err.Error())
			http.Error(w, "Invalid json request object "+err.Error(), 422)
			return
		}

		respondOk(FingerprintResponse{
			Fingerprint: brain.Fingerprint(fingerprintData.Data),
		}, w)
	})

	// Route: /v1/verify
	gitsapi.ServeMux.HandleFunc("/v1/verify", func(w http.ResponseWriter, r *http.Request) {
		if "OPTIONS" == r.Method {
			respond("", 200, w)
			return
		}

		if "POST" != r.Method {
			http.Error(w, "Invalid http method for this path", 422)
			return
		}

		body, err := getRequestBody(r)
		if nil != err {
			archivist.Error("Could not read http request body", err.Error())
			http.Error(w, "Malformed or no body. ", 422)
			return
		}

		var verifyData VerifyRequest
		if err := json.Unmarshal(body, &verifyData); err != nil {
			archivist.Error("Invalid json request object", err.Error())
			http.Error(w, "Invalid json request object "+err.Error(), 422)
			return
		}

		// a mismatch is a regular false response, never an error
		respondOk(VerifyResponse{
			Valid: brain.Verify(verifyData.Data, verifyData.Signature),
		}, w)
	})
}

func respond(message string, responseCode int, w http.ResponseWriter) {

	w.Header().Add("Access-Control-Allow-Headers", "*")
	w.Header().Add("Access-Control-Allow-Origin", "*")

	w.WriteHeader(responseCode)
	messageBytes := []byte(message)

	_, err := w.Write(messageBytes)
	if nil != err {
		archivist.Error("Could not write http response body ", err, message)
	}
}

func respondOk(data interface{}, w http.ResponseWriter) {
	// than we gonne json encode it
	// build the json
	responseData, err := json.Marshal(data)
	if nil != err {
		http.Error(w, "Error building response data json", 500)
		return
	}

	// finally we gonne send our response
	w.Header().Add("Access-Control-Allow-Headers", "*")
	w.Header().Add("Access-Control-Allow-Origin", "*")
	w.WriteHeader(200)
	_, err = w.Write(responseData)
	if nil != err {
		archivist.Error("Could not write http response body ", err, data)
	}
}

func getRequestBody(r *http.Request) ([]byte, error) {
	body, err := ioutil.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		return nil, err
	}
	return body, nil
}
