package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-graph/internal/pkg/errors"
)

// pathID - числовой идентификатор из пути
func pathID(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidRequest(map[string]interface{}{name: raw})
	}
	return id, nil
}

// queryList - значения параметра через запятую
func queryList(c *fiber.Ctx, name string) []string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

func queryIntList(c *fiber.Ctx, name string) ([]int, error) {
	values := queryList(c, name)
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]int, 0, len(values))
	for _, v := range values {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.InvalidRequest(map[string]interface{}{name: v})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func invalidBody(err error) error {
	return errors.InvalidRequest(map[string]interface{}{"body": "invalid JSON"}).Wrap(err)
}
