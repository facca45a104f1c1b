package models

type Category string

const (
	CategoryMachinery Category = "machinery"
	CategoryFurniture Category = "furniture"
	CategoryVehicles  Category = "vehicles"
)

type Status string

const (
	StatusInUse        Status = "in_use"
	StatusInStock      Status = "in_stock"
	StatusOutForRepair Status = "out_for_repair"
)

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionGood    Condition = "good"
	ConditionDamaged Condition = "damaged"
	ConditionPoor    Condition = "poor"
)

type Ownership string

const (
	OwnershipSelfOwned Ownership = "self_owned"
	OwnershipPartner   Ownership = "partner"
)

type FileCategory string

const (
	FileCategoryInsurance FileCategory = "insurance"
	FileCategoryWarranty  FileCategory = "warranty"
	FileCategoryManual    FileCategory = "manual"
	FileCategoryReceipt   FileCategory = "receipt"
	FileCategoryGeneral   FileCategory = "general"
)

// Option pairs a stored enum value with the label shown in form selects
// and list cells.
type Option struct {
	Value string
	Label string
}

var CategoryOptions = []Option{
	{Value: string(CategoryMachinery), Label: "Machinery"},
	{Value: string(CategoryFurniture), Label: "Furniture"},
	{Value: string(CategoryVehicles), Label: "Vehicles"},
}

var StatusOptions = []Option{
	{Value: string(StatusInUse), Label: "In Use"},
	{Value: string(StatusInStock), Label: "In Stock"},
	{Value: string(StatusOutForRepair), Label: "Out for Repair"},
}

var ConditionOptions = []Option{
	{Value: string(ConditionNew), Label: "New"},
	{Value: string(ConditionGood), Label: "Good"},
	{Value: string(ConditionDamaged), Label: "Damaged"},
	{Value: string(ConditionPoor), Label: "Poor"},
}

var OwnershipOptions = []Option{
	{Value: string(OwnershipSelfOwned), Label: "Self-Owned"},
	{Value: string(OwnershipPartner), Label: "Partner"},
}

var FileCategoryOptions = []Option{
	{Value: string(FileCategoryInsurance), Label: "Insurance"},
	{Value: string(FileCategoryWarranty), Label: "Warranty"},
	{Value: string(FileCategoryManual), Label: "Manual"},
	{Value: string(FileCategoryReceipt), Label: "Receipt"},
	{Value: string(FileCategoryGeneral), Label: "General"},
}

func labelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	// unknown values render as-is, same as the list table does
	return value
}

func validFor(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func (c Category) Label() string  { return labelFor(CategoryOptions, string(c)) }
func (c Category) Valid() bool    { return validFor(CategoryOptions, string(c)) }
func (s Status) Label() string    { return labelFor(StatusOptions, string(s)) }
func (s Status) Valid() bool      { return validFor(StatusOptions, string(s)) }
func (c Condition) Label() string { return labelFor(ConditionOptions, string(c)) }
func (c Condition) Valid() bool   { return validFor(ConditionOptions, string(c)) }
func (o Ownership) Label() string { return labelFor(OwnershipOptions, string(o)) }
func (o Ownership) Valid() bool   { return validFor(OwnershipOptions, string(o)) }

func (f FileCategory) Label() string { return labelFor(FileCategoryOptions, string(f)) }
func (f FileCategory) Valid() bool   { return validFor(FileCategoryOptions, string(f)) }
