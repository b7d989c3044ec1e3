// Package despatch XML UBL 2.1 DespatchAdvice (e-İrsaliye) de una irsaliye ya emitida,
// con digest SHA-256 sobre su forma canónica (C14N).
package despatch

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	NsDespatchAdvice = "urn:oasis:names:specification:ubl:schema:xsd:DespatchAdvice-2"
	NsCac            = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc            = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	customizationID = "TR1.2.1"
	profileID       = "TEMELIRSALIYE"
	defaultUnitCode = "C62" // unidad genérica UN/ECE
)

// namespace fijo para derivar un UUID estable por número de documento.
var documentNamespace = uuid.MustParse("6f1c1d2e-8d3b-4c1a-9b59-3f6c2b7a4e10")

var _ fulfillment.DespatchAdviceBuilder = (*Builder)(nil)

// Builder construye el DespatchAdvice.
type Builder struct{}

// NewBuilder crea el builder.
func NewBuilder() *Builder { return &Builder{} }

// Build devuelve el XML y el digest base64 de su forma canónica.
// El mismo registro produce siempre los mismos bytes y el mismo digest.
func (b *Builder) Build(rec *entity.DispatchRecord, issuer fulfillment.Issuer) ([]byte, string, error) {
	if rec == nil || rec.DocumentNo == "" {
		return nil, "", fmt.Errorf("despatch: irsaliye sin número de documento")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("DespatchAdvice")
	root.CreateAttr("xmlns", NsDespatchAdvice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	// ── 1. cabecera ──
	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "CustomizationID", customizationID)
	cbc(root, "ProfileID", profileID)
	cbc(root, "ID", rec.DocumentNo)
	cbc(root, "CopyIndicator", "false")
	cbc(root, "UUID", uuid.NewSHA1(documentNamespace, []byte(rec.DocumentNo)).String())
	cbc(root, "IssueDate", rec.DispatchedAt.UTC().Format("2006-01-02"))
	cbc(root, "IssueTime", rec.DispatchedAt.UTC().Format("15:04:05"))
	cbc(root, "DespatchAdviceTypeCode", "SEVK")
	if rec.Transport.Note != "" {
		cbc(root, "Note", rec.Transport.Note)
	}
	cbc(root, "LineCountNumeric", strconv.Itoa(len(rec.Lines)))

	orderRef := root.CreateElement("cac:OrderReference")
	cbc(orderRef, "ID", rec.OrderNumber)

	// ── 2. partes ──
	party(root.CreateElement("cac:DespatchSupplierParty"), "VKN", issuer.TaxID, issuer.Name)
	party(root.CreateElement("cac:DeliveryCustomerParty"), "MUSTERINO", rec.CustomerCode, rec.CustomerName)

	// ── 3. transporte ──
	shipment(root, rec)

	// ── 4. líneas ──
	for i, l := range rec.Lines {
		despatchLine(root, i+1, l)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("despatch: serializar XML: %w", err)
	}
	digest, err := Digest(out)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

// Digest SHA-256 (base64) de la forma canónica C14N del XML.
// La declaración XML no forma parte de la forma canónica.
func Digest(xmlBytes []byte) (string, error) {
	body := bytes.TrimSpace(xmlBytes)
	if bytes.HasPrefix(body, []byte("<?xml")) {
		if i := bytes.Index(body, []byte("?>")); i >= 0 {
			body = body[i+2:]
		}
	}
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("despatch: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func cbc(parent *etree.Element, local, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
	return el
}

func party(container *etree.Element, scheme, id, name string) {
	p := container.CreateElement("cac:Party")
	ident := cbc(p.CreateElement("cac:PartyIdentification"), "ID", id)
	ident.CreateAttr("schemeID", scheme)
	cbc(p.CreateElement("cac:PartyName"), "Name", name)
}

func shipment(root *etree.Element, rec *entity.DispatchRecord) {
	t := rec.Transport
	s := root.CreateElement("cac:Shipment")
	cbc(s, "ID", "1")

	stage := s.CreateElement("cac:ShipmentStage")
	road := stage.CreateElement("cac:TransportMeans").CreateElement("cac:RoadTransport")
	cbc(road, "LicensePlateID", t.VehiclePlate).CreateAttr("schemeID", "PLAKA")

	first, family := splitName(t.DriverName)
	driver := stage.CreateElement("cac:DriverPerson")
	cbc(driver, "FirstName", first)
	cbc(driver, "FamilyName", family)
	cbc(driver, "NationalityID", t.DriverID)

	delivery := s.CreateElement("cac:Delivery")
	if t.CarrierName != "" {
		cbc(delivery.CreateElement("cac:CarrierParty").CreateElement("cac:PartyName"), "Name", t.CarrierName)
	}
	dd := delivery.CreateElement("cac:Despatch")
	cbc(dd, "ActualDespatchDate", rec.DispatchedAt.UTC().Format("2006-01-02"))
	cbc(dd, "ActualDespatchTime", rec.DispatchedAt.UTC().Format("15:04:05"))

	if t.TrailerPlate != "" {
		eq := s.CreateElement("cac:TransportHandlingUnit").CreateElement("cac:TransportEquipment")
		cbc(eq, "ID", t.TrailerPlate).CreateAttr("schemeID", "DORSEPLAKA")
	}
}

func despatchLine(root *etree.Element, n int, l entity.DispatchRecordLine) {
	dl := root.CreateElement("cac:DespatchLine")
	cbc(dl, "ID", strconv.Itoa(n))
	cbc(dl, "DeliveredQuantity", formatQty(l.Quantity)).CreateAttr("unitCode", unitCode(l.Unit))
	cbc(dl.CreateElement("cac:OrderLineReference"), "LineID", strconv.Itoa(l.RowNumber))

	item := dl.CreateElement("cac:Item")
	cbc(item, "Name", nonEmpty(l.ProductName, l.ProductCode))
	cbc(item.CreateElement("cac:SellersItemIdentification"), "ID", l.ProductCode)
}

// splitName "Ali Veli Yılmaz" → ("Ali Veli", "Yılmaz").
func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	i := strings.LastIndex(full, " ")
	if i < 0 {
		return full, ""
	}
	return full[:i], full[i+1:]
}

// unitCode traduce las unidades de Mikro más comunes a UN/ECE rec 20.
func unitCode(unit string) string {
	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "ADET", "AD":
		return "C62"
	case "KG", "KILO":
		return "KGM"
	case "LT", "LITRE":
		return "LTR"
	case "KOLI", "KL":
		return "CT"
	case "PAKET", "PK":
		return "PA"
	default:
		return defaultUnitCode
	}
}

func formatQty(d decimal.Decimal) string {
	return d.StringFixed(4)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
