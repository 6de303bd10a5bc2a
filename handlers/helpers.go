package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// nonceAction names the checkout session nonce. One nonce covers all button
// callbacks of a browsing session.
const nonceAction = "ppcp-checkout"

var validate = validator.New()

// decodeButtonRequest checks the nonce and unpacks the `data` form field of a
// button callback into target, validating it. The returned error message is
// safe to echo back in the response envelope.
func decodeButtonRequest(req *http.Request, target interface{}) error {
	if err := req.ParseForm(); err != nil {
		return fmt.Errorf("error parsing form data: [%v]", err)
	}

	if !nonceService.Verify(req.PostFormValue("nonce"), nonceAction) {
		return errors.New("security check failed, please reload the page and try again")
	}

	data := req.PostFormValue("data")
	if data == "" {
		return errors.New("missing data field in request")
	}

	if err := json.Unmarshal([]byte(data), target); err != nil {
		return fmt.Errorf("error parsing request data: [%v]", err)
	}

	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("invalid request data: [%v]", err)
	}

	return nil
}
