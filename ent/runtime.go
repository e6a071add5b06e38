// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/xyhcode/gocms/ent/category"
	"github.com/xyhcode/gocms/ent/comment"
	"github.com/xyhcode/gocms/ent/content"
	"github.com/xyhcode/gocms/ent/parameter"
	"github.com/xyhcode/gocms/ent/schema"
	"github.com/xyhcode/gocms/ent/tag"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[1].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescUpdatedAt is the schema descriptor for updated_at field.
	categoryDescUpdatedAt := categoryFields[2].Descriptor()
	// category.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	category.DefaultUpdatedAt = categoryDescUpdatedAt.Default.(func() time.Time)
	// category.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	category.UpdateDefaultUpdatedAt = categoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[3].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescSlug is the schema descriptor for slug field.
	categoryDescSlug := categoryFields[4].Descriptor()
	// category.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	category.SlugValidator = categoryDescSlug.Validators[0].(func(string) error)
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[1].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	// commentDescUpdatedAt is the schema descriptor for updated_at field.
	commentDescUpdatedAt := commentFields[2].Descriptor()
	// comment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	comment.DefaultUpdatedAt = commentDescUpdatedAt.Default.(func() time.Time)
	// comment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	comment.UpdateDefaultUpdatedAt = commentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commentDescBody is the schema descriptor for body field.
	commentDescBody := commentFields[3].Descriptor()
	// comment.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	comment.BodyValidator = commentDescBody.Validators[0].(func(string) error)
	// commentDescName is the schema descriptor for name field.
	commentDescName := commentFields[5].Descriptor()
	// comment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	comment.NameValidator = func() func(string) error {
		validators := commentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// commentDescEmail is the schema descriptor for email field.
	commentDescEmail := commentFields[6].Descriptor()
	// comment.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	comment.EmailValidator = commentDescEmail.Validators[0].(func(string) error)
	// commentDescWebSite is the schema descriptor for web_site field.
	commentDescWebSite := commentFields[7].Descriptor()
	// comment.WebSiteValidator is a validator for the "web_site" field. It is called by the builders before save.
	comment.WebSiteValidator = commentDescWebSite.Validators[0].(func(string) error)
	contentFields := schema.Content{}.Fields()
	_ = contentFields
	// contentDescTitle is the schema descriptor for title field.
	contentDescTitle := contentFields[2].Descriptor()
	// content.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	content.TitleValidator = func() func(string) error {
		validators := contentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentDescSlug is the schema descriptor for slug field.
	contentDescSlug := contentFields[5].Descriptor()
	// content.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	content.SlugValidator = contentDescSlug.Validators[0].(func(string) error)
	// contentDescCreatedAt is the schema descriptor for created_at field.
	contentDescCreatedAt := contentFields[6].Descriptor()
	// content.DefaultCreatedAt holds the default value on creation for the created_at field.
	content.DefaultCreatedAt = contentDescCreatedAt.Default.(func() time.Time)
	// contentDescUpdatedAt is the schema descriptor for updated_at field.
	contentDescUpdatedAt := contentFields[7].Descriptor()
	// content.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	content.DefaultUpdatedAt = contentDescUpdatedAt.Default.(func() time.Time)
	// content.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	content.UpdateDefaultUpdatedAt = contentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contentDescDisplayOrder is the schema descriptor for display_order field.
	contentDescDisplayOrder := contentFields[9].Descriptor()
	// content.DefaultDisplayOrder holds the default value on creation for the display_order field.
	content.DefaultDisplayOrder = contentDescDisplayOrder.Default.(int)
	parameterFields := schema.Parameter{}.Fields()
	_ = parameterFields
	// parameterDescName is the schema descriptor for name field.
	parameterDescName := parameterFields[0].Descriptor()
	// parameter.NameValidator is a validator for the "name" field. It is called by the builders before save.
	parameter.NameValidator = func() func(string) error {
		validators := parameterDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parameterDescComment is the schema descriptor for comment field.
	parameterDescComment := parameterFields[2].Descriptor()
	// parameter.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	parameter.CommentValidator = parameterDescComment.Validators[0].(func(string) error)
	// parameterDescCreatedAt is the schema descriptor for created_at field.
	parameterDescCreatedAt := parameterFields[3].Descriptor()
	// parameter.DefaultCreatedAt holds the default value on creation for the created_at field.
	parameter.DefaultCreatedAt = parameterDescCreatedAt.Default.(func() time.Time)
	// parameterDescUpdatedAt is the schema descriptor for updated_at field.
	parameterDescUpdatedAt := parameterFields[4].Descriptor()
	// parameter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	parameter.DefaultUpdatedAt = parameterDescUpdatedAt.Default.(func() time.Time)
	// parameter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	parameter.UpdateDefaultUpdatedAt = parameterDescUpdatedAt.UpdateDefault.(func() time.Time)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescCreatedAt is the schema descriptor for created_at field.
	tagDescCreatedAt := tagFields[1].Descriptor()
	// tag.DefaultCreatedAt holds the default value on creation for the created_at field.
	tag.DefaultCreatedAt = tagDescCreatedAt.Default.(func() time.Time)
	// tagDescUpdatedAt is the schema descriptor for updated_at field.
	tagDescUpdatedAt := tagFields[2].Descriptor()
	// tag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tag.DefaultUpdatedAt = tagDescUpdatedAt.Default.(func() time.Time)
	// tag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tag.UpdateDefaultUpdatedAt = tagDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[3].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescSlug is the schema descriptor for slug field.
	tagDescSlug := tagFields[4].Descriptor()
	// tag.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	tag.SlugValidator = tagDescSlug.Validators[0].(func(string) error)
}
