package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/volei-torneio/models"
	"github.com/Dosada05/volei-torneio/storage"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryDocumentStore(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		store := storage.NewMemoryDocumentStore()

		doc, version, err := store.Load(ctx)

		Convey("Then loading returns an empty document without a version", func() {
			So(err, ShouldBeNil)
			So(version, ShouldEqual, storage.Version(""))
			So(doc.Matches, ShouldNotBeNil)
			So(doc.Votes, ShouldNotBeNil)
		})

		Convey("When saving at the loaded version", func() {
			doc.Athletes = append(doc.Athletes, models.Athlete{ID: "1", Name: "Ana"})
			v1, err := store.Save(ctx, doc, version)
			So(err, ShouldBeNil)

			Convey("Then the document is replaced and the version advances", func() {
				loaded, v, err := store.Load(ctx)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, v1)
				So(loaded.Athletes, ShouldResemble, doc.Athletes)
			})

			Convey("And a write based on the stale version conflicts", func() {
				_, err := store.Save(ctx, doc, version)
				So(errors.Is(err, storage.ErrVersionConflict), ShouldBeTrue)
			})
		})
	})
}
