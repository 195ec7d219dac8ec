package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequestFields flattens a urlencoded, multipart or JSON object body into
// string fields. Booleans become "1" or "", numbers keep their literal text.
func RequestFields(c *gin.Context) (map[string]string, error) {
	out := map[string]string{}

	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		var raw map[string]json.RawMessage
		if err := c.ShouldBindJSON(&raw); err != nil {
			return nil, err
		}
		for k, v := range raw {
			out[k] = jsonScalar(v)
		}
		return out, nil
	}

	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		mergeLast(out, form.Value)
		return out, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	mergeLast(out, c.Request.PostForm)
	return out, nil
}

// mergeLast keeps the last submitted value of each key.
func mergeLast(out map[string]string, values map[string][]string) {
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[len(vs)-1]
		}
	}
}

func jsonScalar(v json.RawMessage) string {
	var x any
	dec := json.NewDecoder(strings.NewReader(string(v)))
	dec.UseNumber()
	if err := dec.Decode(&x); err != nil {
		return ""
	}
	switch t := x.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case json.Number:
		return t.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
