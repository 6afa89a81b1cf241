package repository

import (
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/weaviate/weaviate/entities/models"

	qt "github.com/frankban/quicktest"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

var testFileUID = uuid.FromStringOrNil("6e362976-bfc1-4677-b761-dcc12495b5bd")

func testItems(n, dim int) []VectorItem {
	items := make([]VectorItem, n)
	for i := range items {
		items[i] = VectorItem{
			ID:            VectorItemID(testFileUID, i),
			Vector:        make([]float32, dim),
			Text:          "page text",
			OwnerUID:      "kp_42",
			SourceFileUID: testFileUID,
			PageIndex:     i,
		}
	}
	return items
}

func TestVectorItemID(t *testing.T) {
	c := qt.New(t)

	c.Check(VectorItemID(testFileUID, 0), qt.Equals, VectorItemID(testFileUID, 0))
	c.Check(VectorItemID(testFileUID, 0), qt.Not(qt.Equals), VectorItemID(testFileUID, 1))

	other := uuid.FromStringOrNil("f6f9f6ed-ab85-4753-9dbc-6dbd9a3818f3")
	c.Check(VectorItemID(testFileUID, 0), qt.Not(qt.Equals), VectorItemID(other, 0))
	c.Check(VectorItemID(testFileUID, 0).Version(), qt.Equals, byte(uuid.V5))
}

func TestValidateVectorItems(t *testing.T) {
	c := qt.New(t)

	testcases := []struct {
		name      string
		namespace string
		items     []VectorItem
		wantErr   string
	}{
		{
			name:      "ok",
			namespace: "ns",
			items:     testItems(3, 4),
		},
		{
			name:      "ok - no items",
			namespace: "ns",
		},
		{
			name:    "nok - empty namespace",
			items:   testItems(1, 4),
			wantErr: "invalid: empty namespace",
		},
		{
			name:      "nok - wrong dimensionality",
			namespace: "ns",
			items:     append(testItems(1, 4), testItems(1, 3)...),
			wantErr:   "invalid: item 1 has 3 dimensions, expected 4",
		},
		{
			name:      "nok - missing ID",
			namespace: "ns",
			items:     []VectorItem{{Vector: make([]float32, 4)}},
			wantErr:   "invalid: item 0 has no ID",
		},
	}

	for _, tc := range testcases {
		c.Run(tc.name, func(c *qt.C) {
			err := validateVectorItems(tc.namespace, tc.items, 4)
			if tc.wantErr != "" {
				c.Check(err, qt.ErrorMatches, tc.wantErr)
				c.Check(err, qt.ErrorIs, errdomain.ErrInvalidArgument)
				return
			}
			c.Check(err, qt.IsNil)
		})
	}
}

func TestMilvusColumns(t *testing.T) {
	c := qt.New(t)

	items := testItems(2, 4)
	items[1].Text = strings.Repeat("é", milvusMaxVarCharLength)

	cols := milvusColumns("ns-1", items, 4)
	byName := map[string]column.Column{}
	for _, col := range cols {
		c.Check(col.Len(), qt.Equals, 2)
		byName[col.Name()] = col
	}
	c.Assert(byName, qt.HasLen, 7)

	id, err := byName[milvusFieldID].Get(1)
	c.Assert(err, qt.IsNil)
	c.Check(id, qt.Equals, VectorItemID(testFileUID, 1).String())

	ns, err := byName[milvusFieldNamespace].Get(0)
	c.Assert(err, qt.IsNil)
	c.Check(ns, qt.Equals, "ns-1")

	page, err := byName[milvusFieldPageIndex].Get(1)
	c.Assert(err, qt.IsNil)
	c.Check(page, qt.Equals, int64(1))

	text, err := byName[milvusFieldText].Get(1)
	c.Assert(err, qt.IsNil)
	c.Check(len(text.(string)) <= milvusMaxVarCharLength, qt.IsTrue)
	c.Check(strings.HasSuffix(text.(string), "é"), qt.IsTrue)
}

func TestTruncateUTF8(t *testing.T) {
	c := qt.New(t)

	c.Check(truncateUTF8("hello", 10), qt.Equals, "hello")
	c.Check(truncateUTF8("hello", 3), qt.Equals, "hel")
	// "é" is two bytes long.
	c.Check(truncateUTF8("aé", 2), qt.Equals, "a")
}

func TestWeaviateObjects(t *testing.T) {
	c := qt.New(t)

	objs := weaviateObjects("Page", "ns-1", testItems(2, 4))
	c.Assert(objs, qt.HasLen, 2)

	c.Check(objs[1].Class, qt.Equals, "Page")
	c.Check(objs[1].Tenant, qt.Equals, "ns-1")
	c.Check(string(objs[1].ID), qt.Equals, VectorItemID(testFileUID, 1).String())
	c.Check(objs[1].Vector, qt.HasLen, 4)

	props := objs[1].Properties.(map[string]any)
	c.Check(props[weaviatePropPageIndex], qt.Equals, 1)
	c.Check(props[weaviatePropSourceFileUID], qt.Equals, testFileUID.String())
	c.Check(props[weaviatePropOwnerUID], qt.Equals, "kp_42")
}

func TestWeaviateClass(t *testing.T) {
	c := qt.New(t)

	class := weaviateClass("Page")
	c.Check(class.Vectorizer, qt.Equals, "none")
	c.Check(class.MultiTenancyConfig.Enabled, qt.IsTrue)
	c.Check(class.Properties, qt.HasLen, 4)
}

func TestBatchErrors(t *testing.T) {
	c := qt.New(t)

	ok := models.ObjectsGetResponse{}
	failed := models.ObjectsGetResponse{
		Object: models.Object{ID: "4f0d"},
		Result: &models.ObjectsGetResponseAO2Result{
			Errors: &models.ErrorResponse{
				Error: []*models.ErrorResponseErrorItems0{{Message: "tenant not active"}},
			},
		},
	}

	c.Check(batchErrors([]models.ObjectsGetResponse{ok}), qt.HasLen, 0)
	c.Check(batchErrors([]models.ObjectsGetResponse{ok, failed}), qt.DeepEquals, []string{"4f0d: tenant not active"})
}
