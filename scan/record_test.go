package scan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type person struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Height float64 `json:"height"`
	Admin  bool    `json:"admin"`
}

type RecordTestSuite struct {
	suite.Suite
	Fields []Field
}

func (suite *RecordTestSuite) SetupTest() {
	fields, err := ParseLayout("name:string age:int height:float admin:bool")
	suite.Require().NoError(err)
	suite.Fields = fields
}

func (suite *RecordTestSuite) TestRecord() {
	r := newReader("alice 30 1.65 true", "bob 41 1.80 false")
	people := []person{
		*Record[person](r, suite.Fields),
		*Record[person](r, suite.Fields),
	}
	suite.Equal(
		[]person{
			{Name: "alice", Age: 30, Height: 1.65, Admin: true},
			{Name: "bob", Age: 41, Height: 1.80, Admin: false},
		},
		people,
	)
}

func (suite *RecordTestSuite) TestRecordMap() {
	values := RecordMap(newReader("carol 25 1.5 false"), suite.Fields)
	suite.Equal([]string{"name", "age", "height", "admin"}, values.Keys())

	age, ok := values.Get("age")
	suite.True(ok)
	suite.Equal(25, age)

	bs, err := json.Marshal(values)
	suite.NoError(err)
	suite.Equal(`{"name":"carol","age":25,"height":1.5,"admin":false}`, string(bs))
}

func (suite *RecordTestSuite) TestRecord_TokenCountMismatch() {
	err := catchScan(func() {
		Record[person](newReader("dave 30 1.7"), suite.Fields)
	})
	scanErr := requireScanError(suite.T(), err, TokenCountMismatch)
	suite.Equal(4, scanErr.Want)
	suite.Equal(3, scanErr.Got)
}

func (suite *RecordTestSuite) TestRecord_ParseFailure() {
	err := catchScan(func() {
		Record[person](newReader("erin old 1.7 true"), suite.Fields)
	})
	scanErr := requireScanError(suite.T(), err, ParseFailure)
	suite.Equal(1, scanErr.Index)
	suite.Equal("old", scanErr.Token)
	suite.Contains(scanErr.Error(), `field "age"`)
}

func (suite *RecordTestSuite) TestParseLayout_Errors() {
	for _, layout := range []string{
		"",
		"name",
		":int",
		"name:complex",
		"name:string name:int",
	} {
		_, err := ParseLayout(layout)
		suite.Error(err, layout)
	}
}

func (suite *RecordTestSuite) TestLayoutTypes() {
	types := LayoutTypes()
	suite.Contains(types, "int")
	suite.Contains(types, "string")
	suite.IsIncreasing(types)
}

func TestRecordTestSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}
