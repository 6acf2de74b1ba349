// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoicerd/v1/invoicerd.proto

package invoicerdv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Vendor struct {
	state                    protoimpl.MessageState `protogen:"open.v1"`
	Id                       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                     string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	SpreadsheetColumnMapping map[string]string      `protobuf:"bytes,3,rep,name=spreadsheet_column_mapping,json=spreadsheetColumnMapping,proto3" json:"spreadsheet_column_mapping,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	CreatedAt                string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt                string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *Vendor) Reset() {
	*x = Vendor{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vendor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vendor) ProtoMessage() {}

func (x *Vendor) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vendor.ProtoReflect.Descriptor instead.
func (*Vendor) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{0}
}

func (x *Vendor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vendor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vendor) GetSpreadsheetColumnMapping() map[string]string {
	if x != nil {
		return x.SpreadsheetColumnMapping
	}
	return nil
}

func (x *Vendor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Vendor) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Document struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VendorId  string                 `protobuf:"bytes,2,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	MessageId string                 `protobuf:"bytes,3,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Status    string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	// Extracted record JSON on success, {"error": "..."} on failure.
	DataJson      string `protobuf:"bytes,5,opt,name=data_json,json=dataJson,proto3" json:"data_json,omitempty"`
	SourcePath    string `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	ProcessedAt   string `protobuf:"bytes,7,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	CreatedAt     string `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *Document) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetDataJson() string {
	if x != nil {
		return x.DataJson
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateVendorRequest struct {
	state                    protoimpl.MessageState `protogen:"open.v1"`
	Name                     string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Emails                   []string               `protobuf:"bytes,2,rep,name=emails,proto3" json:"emails,omitempty"`
	SpreadsheetColumnMapping map[string]string      `protobuf:"bytes,3,rep,name=spreadsheet_column_mapping,json=spreadsheetColumnMapping,proto3" json:"spreadsheet_column_mapping,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *CreateVendorRequest) Reset() {
	*x = CreateVendorRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVendorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVendorRequest) ProtoMessage() {}

func (x *CreateVendorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVendorRequest.ProtoReflect.Descriptor instead.
func (*CreateVendorRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{2}
}

func (x *CreateVendorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateVendorRequest) GetEmails() []string {
	if x != nil {
		return x.Emails
	}
	return nil
}

func (x *CreateVendorRequest) GetSpreadsheetColumnMapping() map[string]string {
	if x != nil {
		return x.SpreadsheetColumnMapping
	}
	return nil
}

type CreateVendorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        *Vendor                `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVendorResponse) Reset() {
	*x = CreateVendorResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVendorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVendorResponse) ProtoMessage() {}

func (x *CreateVendorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVendorResponse.ProtoReflect.Descriptor instead.
func (*CreateVendorResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{3}
}

func (x *CreateVendorResponse) GetVendor() *Vendor {
	if x != nil {
		return x.Vendor
	}
	return nil
}

type ListVendorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsRequest) Reset() {
	*x = ListVendorsRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsRequest) ProtoMessage() {}

func (x *ListVendorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsRequest.ProtoReflect.Descriptor instead.
func (*ListVendorsRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{4}
}

type ListVendorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendors       []*Vendor              `protobuf:"bytes,1,rep,name=vendors,proto3" json:"vendors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsResponse) Reset() {
	*x = ListVendorsResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsResponse) ProtoMessage() {}

func (x *ListVendorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsResponse.ProtoReflect.Descriptor instead.
func (*ListVendorsResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{5}
}

func (x *ListVendorsResponse) GetVendors() []*Vendor {
	if x != nil {
		return x.Vendors
	}
	return nil
}

type SetVendorRulesRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	VendorId string                 `protobuf:"bytes,1,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	// JSON array of extraction rules, validated against the rule schema.
	RulesJson     string `protobuf:"bytes,2,opt,name=rules_json,json=rulesJson,proto3" json:"rules_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetVendorRulesRequest) Reset() {
	*x = SetVendorRulesRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetVendorRulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetVendorRulesRequest) ProtoMessage() {}

func (x *SetVendorRulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetVendorRulesRequest.ProtoReflect.Descriptor instead.
func (*SetVendorRulesRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{6}
}

func (x *SetVendorRulesRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *SetVendorRulesRequest) GetRulesJson() string {
	if x != nil {
		return x.RulesJson
	}
	return ""
}

type SetVendorRulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         int32                  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetVendorRulesResponse) Reset() {
	*x = SetVendorRulesResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetVendorRulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetVendorRulesResponse) ProtoMessage() {}

func (x *SetVendorRulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetVendorRulesResponse.ProtoReflect.Descriptor instead.
func (*SetVendorRulesResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{7}
}

func (x *SetVendorRulesResponse) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GetVendorRulesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VendorId      string                 `protobuf:"bytes,1,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVendorRulesRequest) Reset() {
	*x = GetVendorRulesRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVendorRulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVendorRulesRequest) ProtoMessage() {}

func (x *GetVendorRulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVendorRulesRequest.ProtoReflect.Descriptor instead.
func (*GetVendorRulesRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{8}
}

func (x *GetVendorRulesRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type GetVendorRulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RulesJson     string                 `protobuf:"bytes,1,opt,name=rules_json,json=rulesJson,proto3" json:"rules_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVendorRulesResponse) Reset() {
	*x = GetVendorRulesResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVendorRulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVendorRulesResponse) ProtoMessage() {}

func (x *GetVendorRulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVendorRulesResponse.ProtoReflect.Descriptor instead.
func (*GetVendorRulesResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{9}
}

func (x *GetVendorRulesResponse) GetRulesJson() string {
	if x != nil {
		return x.RulesJson
	}
	return ""
}

type ListDocumentsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional status filter: pending, processed or error.
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	VendorId      string `protobuf:"bytes,2,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{10}
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDocumentsRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{11}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ExtractFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	VendorId      string                 `protobuf:"bytes,2,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractFileRequest) Reset() {
	*x = ExtractFileRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractFileRequest) ProtoMessage() {}

func (x *ExtractFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractFileRequest.ProtoReflect.Descriptor instead.
func (*ExtractFileRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{12}
}

func (x *ExtractFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ExtractFileRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type ExtractFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordJson    string                 `protobuf:"bytes,1,opt,name=record_json,json=recordJson,proto3" json:"record_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractFileResponse) Reset() {
	*x = ExtractFileResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractFileResponse) ProtoMessage() {}

func (x *ExtractFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractFileResponse.ProtoReflect.Descriptor instead.
func (*ExtractFileResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{13}
}

func (x *ExtractFileResponse) GetRecordJson() string {
	if x != nil {
		return x.RecordJson
	}
	return ""
}

type ProcessMailboxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessMailboxRequest) Reset() {
	*x = ProcessMailboxRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessMailboxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessMailboxRequest) ProtoMessage() {}

func (x *ProcessMailboxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessMailboxRequest.ProtoReflect.Descriptor instead.
func (*ProcessMailboxRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{14}
}

type ProcessMailboxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	Failed        int32                  `protobuf:"varint,2,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessMailboxResponse) Reset() {
	*x = ProcessMailboxResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessMailboxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessMailboxResponse) ProtoMessage() {}

func (x *ProcessMailboxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessMailboxResponse.ProtoReflect.Descriptor instead.
func (*ProcessMailboxResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{15}
}

func (x *ProcessMailboxResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ProcessMailboxResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ReprocessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentRequest) Reset() {
	*x = ReprocessDocumentRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentRequest) ProtoMessage() {}

func (x *ReprocessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{16}
}

func (x *ReprocessDocumentRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

type ReprocessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentResponse) Reset() {
	*x = ReprocessDocumentResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentResponse) ProtoMessage() {}

func (x *ReprocessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{17}
}

func (x *ReprocessDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VendorId      string                 `protobuf:"bytes,1,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{18}
}

func (x *ExportDocumentsRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicerd_v1_invoicerd_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_invoicerd_v1_invoicerd_proto_rawDescGZIP(), []int{19}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDocumentsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_invoicerd_v1_invoicerd_proto protoreflect.FileDescriptor

const file_invoicerd_v1_invoicerd_proto_rawDesc = "" +
	"\n" +
	"\x1cinvoicerd/v1/invoicerd.proto\x12\finvoicerd.v1\"\xa9\x02\n" +
	"\x06Vendor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12p\n" +
	"\x1aspreadsheet_column_mapping\x18\x03 \x03(\v22.invoicerd.v1.Vendor.SpreadsheetColumnMappingEntryR\x18spreadsheetColumnMapping\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\x1aK\n" +
	"\x1dSpreadsheetColumnMappingEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x8d\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tvendor_id\x18\x02 \x01(\tR\bvendorId\x12\x1d\n" +
	"\n" +
	"message_id\x18\x03 \x01(\tR\tmessageId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1b\n" +
	"\tdata_json\x18\x05 \x01(\tR\bdataJson\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12!\n" +
	"\fprocessed_at\x18\a \x01(\tR\vprocessedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\x8d\x02\n" +
	"\x13CreateVendorRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06emails\x18\x02 \x03(\tR\x06emails\x12}\n" +
	"\x1aspreadsheet_column_mapping\x18\x03 \x03(\v2?.invoicerd.v1.CreateVendorRequest.SpreadsheetColumnMappingEntryR\x18spreadsheetColumnMapping\x1aK\n" +
	"\x1dSpreadsheetColumnMappingEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"D\n" +
	"\x14CreateVendorResponse\x12,\n" +
	"\x06vendor\x18\x01 \x01(\v2\x14.invoicerd.v1.VendorR\x06vendor\"\x14\n" +
	"\x12ListVendorsRequest\"E\n" +
	"\x13ListVendorsResponse\x12.\n" +
	"\avendors\x18\x01 \x03(\v2\x14.invoicerd.v1.VendorR\avendors\"S\n" +
	"\x15SetVendorRulesRequest\x12\x1b\n" +
	"\tvendor_id\x18\x01 \x01(\tR\bvendorId\x12\x1d\n" +
	"\n" +
	"rules_json\x18\x02 \x01(\tR\trulesJson\".\n" +
	"\x16SetVendorRulesResponse\x12\x14\n" +
	"\x05count\x18\x01 \x01(\x05R\x05count\"4\n" +
	"\x15GetVendorRulesRequest\x12\x1b\n" +
	"\tvendor_id\x18\x01 \x01(\tR\bvendorId\"7\n" +
	"\x16GetVendorRulesResponse\x12\x1d\n" +
	"\n" +
	"rules_json\x18\x01 \x01(\tR\trulesJson\"K\n" +
	"\x14ListDocumentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tvendor_id\x18\x02 \x01(\tR\bvendorId\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.invoicerd.v1.DocumentR\tdocuments\"E\n" +
	"\x12ExtractFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1b\n" +
	"\tvendor_id\x18\x02 \x01(\tR\bvendorId\"6\n" +
	"\x13ExtractFileResponse\x12\x1f\n" +
	"\vrecord_json\x18\x01 \x01(\tR\n" +
	"recordJson\"\x17\n" +
	"\x15ProcessMailboxRequest\"N\n" +
	"\x16ProcessMailboxResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06failed\x18\x02 \x01(\x05R\x06failed\"9\n" +
	"\x18ReprocessDocumentRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\"3\n" +
	"\x19ReprocessDocumentResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\"5\n" +
	"\x16ExportDocumentsRequest\x12\x1b\n" +
	"\tvendor_id\x18\x01 \x01(\tR\bvendorId\"I\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xc8\x06\n" +
	"\x10InvoicerdService\x12U\n" +
	"\fCreateVendor\x12!.invoicerd.v1.CreateVendorRequest\x1a\".invoicerd.v1.CreateVendorResponse\x12R\n" +
	"\vListVendors\x12 .invoicerd.v1.ListVendorsRequest\x1a!.invoicerd.v1.ListVendorsResponse\x12[\n" +
	"\x0eSetVendorRules\x12#.invoicerd.v1.SetVendorRulesRequest\x1a$.invoicerd.v1.SetVendorRulesResponse\x12[\n" +
	"\x0eGetVendorRules\x12#.invoicerd.v1.GetVendorRulesRequest\x1a$.invoicerd.v1.GetVendorRulesResponse\x12X\n" +
	"\rListDocuments\x12\".invoicerd.v1.ListDocumentsRequest\x1a#.invoicerd.v1.ListDocumentsResponse\x12R\n" +
	"\vExtractFile\x12 .invoicerd.v1.ExtractFileRequest\x1a!.invoicerd.v1.ExtractFileResponse\x12[\n" +
	"\x0eProcessMailbox\x12#.invoicerd.v1.ProcessMailboxRequest\x1a$.invoicerd.v1.ProcessMailboxResponse\x12d\n" +
	"\x11ReprocessDocument\x12&.invoicerd.v1.ReprocessDocumentRequest\x1a'.invoicerd.v1.ReprocessDocumentResponse\x12^\n" +
	"\x0fExportDocuments\x12$.invoicerd.v1.ExportDocumentsRequest\x1a%.invoicerd.v1.ExportDocumentsResponseBCZAgithub.com/invoicerd/invoicerd/gen/proto/invoicerd/v1;invoicerdv1b\x06proto3"

var (
	file_invoicerd_v1_invoicerd_proto_rawDescOnce sync.Once
	file_invoicerd_v1_invoicerd_proto_rawDescData []byte
)

func file_invoicerd_v1_invoicerd_proto_rawDescGZIP() []byte {
	file_invoicerd_v1_invoicerd_proto_rawDescOnce.Do(func() {
		file_invoicerd_v1_invoicerd_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoicerd_v1_invoicerd_proto_rawDesc), len(file_invoicerd_v1_invoicerd_proto_rawDesc)))
	})
	return file_invoicerd_v1_invoicerd_proto_rawDescData
}

var file_invoicerd_v1_invoicerd_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_invoicerd_v1_invoicerd_proto_goTypes = []any{
	(*Vendor)(nil),                    // 0: invoicerd.v1.Vendor
	(*Document)(nil),                  // 1: invoicerd.v1.Document
	(*CreateVendorRequest)(nil),       // 2: invoicerd.v1.CreateVendorRequest
	(*CreateVendorResponse)(nil),      // 3: invoicerd.v1.CreateVendorResponse
	(*ListVendorsRequest)(nil),        // 4: invoicerd.v1.ListVendorsRequest
	(*ListVendorsResponse)(nil),       // 5: invoicerd.v1.ListVendorsResponse
	(*SetVendorRulesRequest)(nil),     // 6: invoicerd.v1.SetVendorRulesRequest
	(*SetVendorRulesResponse)(nil),    // 7: invoicerd.v1.SetVendorRulesResponse
	(*GetVendorRulesRequest)(nil),     // 8: invoicerd.v1.GetVendorRulesRequest
	(*GetVendorRulesResponse)(nil),    // 9: invoicerd.v1.GetVendorRulesResponse
	(*ListDocumentsRequest)(nil),      // 10: invoicerd.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 11: invoicerd.v1.ListDocumentsResponse
	(*ExtractFileRequest)(nil),        // 12: invoicerd.v1.ExtractFileRequest
	(*ExtractFileResponse)(nil),       // 13: invoicerd.v1.ExtractFileResponse
	(*ProcessMailboxRequest)(nil),     // 14: invoicerd.v1.ProcessMailboxRequest
	(*ProcessMailboxResponse)(nil),    // 15: invoicerd.v1.ProcessMailboxResponse
	(*ReprocessDocumentRequest)(nil),  // 16: invoicerd.v1.ReprocessDocumentRequest
	(*ReprocessDocumentResponse)(nil), // 17: invoicerd.v1.ReprocessDocumentResponse
	(*ExportDocumentsRequest)(nil),    // 18: invoicerd.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil),   // 19: invoicerd.v1.ExportDocumentsResponse
	nil,                               // 20: invoicerd.v1.Vendor.SpreadsheetColumnMappingEntry
	nil,                               // 21: invoicerd.v1.CreateVendorRequest.SpreadsheetColumnMappingEntry
}
var file_invoicerd_v1_invoicerd_proto_depIdxs = []int32{
	20, // 0: invoicerd.v1.Vendor.spreadsheet_column_mapping:type_name -> invoicerd.v1.Vendor.SpreadsheetColumnMappingEntry
	21, // 1: invoicerd.v1.CreateVendorRequest.spreadsheet_column_mapping:type_name -> invoicerd.v1.CreateVendorRequest.SpreadsheetColumnMappingEntry
	0,  // 2: invoicerd.v1.CreateVendorResponse.vendor:type_name -> invoicerd.v1.Vendor
	0,  // 3: invoicerd.v1.ListVendorsResponse.vendors:type_name -> invoicerd.v1.Vendor
	1,  // 4: invoicerd.v1.ListDocumentsResponse.documents:type_name -> invoicerd.v1.Document
	2,  // 5: invoicerd.v1.InvoicerdService.CreateVendor:input_type -> invoicerd.v1.CreateVendorRequest
	4,  // 6: invoicerd.v1.InvoicerdService.ListVendors:input_type -> invoicerd.v1.ListVendorsRequest
	6,  // 7: invoicerd.v1.InvoicerdService.SetVendorRules:input_type -> invoicerd.v1.SetVendorRulesRequest
	8,  // 8: invoicerd.v1.InvoicerdService.GetVendorRules:input_type -> invoicerd.v1.GetVendorRulesRequest
	10, // 9: invoicerd.v1.InvoicerdService.ListDocuments:input_type -> invoicerd.v1.ListDocumentsRequest
	12, // 10: invoicerd.v1.InvoicerdService.ExtractFile:input_type -> invoicerd.v1.ExtractFileRequest
	14, // 11: invoicerd.v1.InvoicerdService.ProcessMailbox:input_type -> invoicerd.v1.ProcessMailboxRequest
	16, // 12: invoicerd.v1.InvoicerdService.ReprocessDocument:input_type -> invoicerd.v1.ReprocessDocumentRequest
	18, // 13: invoicerd.v1.InvoicerdService.ExportDocuments:input_type -> invoicerd.v1.ExportDocumentsRequest
	3,  // 14: invoicerd.v1.InvoicerdService.CreateVendor:output_type -> invoicerd.v1.CreateVendorResponse
	5,  // 15: invoicerd.v1.InvoicerdService.ListVendors:output_type -> invoicerd.v1.ListVendorsResponse
	7,  // 16: invoicerd.v1.InvoicerdService.SetVendorRules:output_type -> invoicerd.v1.SetVendorRulesResponse
	9,  // 17: invoicerd.v1.InvoicerdService.GetVendorRules:output_type -> invoicerd.v1.GetVendorRulesResponse
	11, // 18: invoicerd.v1.InvoicerdService.ListDocuments:output_type -> invoicerd.v1.ListDocumentsResponse
	13, // 19: invoicerd.v1.InvoicerdService.ExtractFile:output_type -> invoicerd.v1.ExtractFileResponse
	15, // 20: invoicerd.v1.InvoicerdService.ProcessMailbox:output_type -> invoicerd.v1.ProcessMailboxResponse
	17, // 21: invoicerd.v1.InvoicerdService.ReprocessDocument:output_type -> invoicerd.v1.ReprocessDocumentResponse
	19, // 22: invoicerd.v1.InvoicerdService.ExportDocuments:output_type -> invoicerd.v1.ExportDocumentsResponse
	14, // [14:23] is the sub-list for method output_type
	5,  // [5:14] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_invoicerd_v1_invoicerd_proto_init() }
func file_invoicerd_v1_invoicerd_proto_init() {
	if File_invoicerd_v1_invoicerd_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoicerd_v1_invoicerd_proto_rawDesc), len(file_invoicerd_v1_invoicerd_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_invoicerd_v1_invoicerd_proto_goTypes,
		DependencyIndexes: file_invoicerd_v1_invoicerd_proto_depIdxs,
		MessageInfos:      file_invoicerd_v1_invoicerd_proto_msgTypes,
	}.Build()
	File_invoicerd_v1_invoicerd_proto = out.File
	file_invoicerd_v1_invoicerd_proto_goTypes = nil
	file_invoicerd_v1_invoicerd_proto_depIdxs = nil
}
