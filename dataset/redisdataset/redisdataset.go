/*
Package redisdataset reads datasets from and writes them to Redis lists.

A dataset is stored on a list under a single key, each item of the list
being a record encoded as a flat JSON object.
*/
package redisdataset

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/json"
	"gopkg.in/redis.v5"
)

/*
Client is the subset of the Redis client API the package needs.
A *redis.Client satisfies it.
*/
type Client interface {
	LRange(key string, start, stop int64) *redis.StringSliceCmd
	RPush(key string, values ...interface{}) *redis.IntCmd
}

/*
Read takes a context, a Client and a key and returns the dataset stored on
the list under the key, along with the attributes found on its records in
order of first appearance, or an error. A missing key yields an empty
dataset.
*/
func Read(ctx context.Context, c Client, key string) (dataset.Dataset, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	items, err := c.LRange(key, 0, -1).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("retrieving records from %q: %v", key, err)
	}
	ds, attributes, err := decodeRecords(items)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieving records from %q: %v", key, err)
	}
	return ds, attributes, nil
}

/*
Write takes a context, a Client, a key, a dataset and the attributes to
store and appends each record to the list under the key. It returns the
number of records written or an error.
*/
func Write(ctx context.Context, c Client, key string, ds dataset.Dataset, attributes []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(ds) == 0 {
		return 0, nil
	}
	items := make([]interface{}, 0, len(ds))
	for i, r := range ds {
		data, err := json.EncodeRecord(r, attributes)
		if err != nil {
			return 0, fmt.Errorf("encoding record #%d: %v", i, err)
		}
		items = append(items, string(data))
	}
	if _, err := c.RPush(key, items...).Result(); err != nil {
		return 0, fmt.Errorf("storing records in %q: %v", key, err)
	}
	return len(ds), nil
}

func decodeRecords(items []string) (dataset.Dataset, []string, error) {
	ds := make(dataset.Dataset, 0, len(items))
	var attributes []string
	seen := make(map[string]bool)
	for i, item := range items {
		r, keys, err := json.DecodeRecord([]byte(item))
		if err != nil {
			return nil, nil, fmt.Errorf("decoding record #%d: %v", i, err)
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				attributes = append(attributes, k)
			}
		}
		ds = append(ds, r)
	}
	return ds, attributes, nil
}
