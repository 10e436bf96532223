package stabu

import (
	"fmt"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// Execute builds a schedule from a template. The schedule name falls
// back to the template name when empty.
func Execute(schema *TemplateSchema, scheduleName string) (*domain.CostSchedule, error) {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	if scheduleName == "" {
		scheduleName = schema.Name
	}
	schedule := domain.NewCostSchedule(scheduleName)
	schedule.Description = schema.Description
	if schema.VATRate != nil {
		schedule.VATRate = *schema.VATRate
	}

	for _, ch := range schema.Chapters {
		chapter := schedule.CreateChapter(ch.Name, ch.Code, ch.Description)
		for i, p := range ch.Posts {
			item := buildPost(ch, i, p)
			chapter.AddChild(item)
		}
	}
	return schedule, nil
}

func buildPost(ch ChapterConfig, index int, p PostConfig) *domain.CostItem {
	if p.Text != "" {
		item := domain.NewCostItem(p.Text, "")
		item.IsTextOnly = true
		return item
	}

	code := p.Code
	if code == "" {
		code = fmt.Sprintf("%s.%02d", ch.Code, index+1)
	}
	item := domain.NewCostItem(p.Name, code)
	item.SFBCode = p.SFBCode
	item.Value = domain.CostValue{
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Kind:      domain.ParseQuantityKind(p.Kind),
	}
	return item
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("template validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
