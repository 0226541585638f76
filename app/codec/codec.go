package codec

import (
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// UUIDCodec stores uuid.UUID values as BSON binary subtype 4, so lecturer
// ids round-trip through Mongo without string conversion.
type UUIDCodec struct{}

func (c *UUIDCodec) EncodeValue(ec bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	u := val.Interface().(uuid.UUID)
	return vw.WriteBinaryWithSubtype(u[:], bsontype.BinaryUUID)
}

func (c *UUIDCodec) DecodeValue(dc bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	data, subtype, err := vr.ReadBinary()
	if err != nil {
		return err
	}

	if subtype != bsontype.BinaryUUID {
		return bsoncodec.ValueDecoderError{Name: "UUIDCodec", Types: []reflect.Type{reflect.TypeOf(uuid.UUID{})}}
	}

	u, err := uuid.FromBytes(data)
	if err != nil {
		return err
	}

	val.Set(reflect.ValueOf(u))
	return nil
}
