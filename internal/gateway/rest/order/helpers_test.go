package order_test

import "encoding/json"

func jsonInto(out any, raw string) error {
	return json.Unmarshal([]byte(raw), out)
}
